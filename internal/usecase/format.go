package usecase

import (
	"strings"

	"golang.org/x/net/html"
)

var slackEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// htmlToSlack renders an HTML fragment as Slack mrkdwn. Block elements become
// line breaks, inline emphasis and links map to their Slack equivalents and
// text is escaped so it cannot be read as Slack control sequences.
func htmlToSlack(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}

	node, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return slackEscaper.Replace(input)
	}

	var builder strings.Builder
	renderNode(node, &builder)
	return tidyLines(builder.String())
}

func renderNode(node *html.Node, builder *strings.Builder) {
	switch node.Type {
	case html.TextNode:
		builder.WriteString(slackEscaper.Replace(strings.ReplaceAll(node.Data, "\n", " ")))
		return
	case html.ElementNode:
		switch node.Data {
		case "script", "style", "head", "title":
			return
		case "br":
			builder.WriteRune('\n')
			return
		case "a":
			renderLink(node, builder)
			return
		case "b", "strong":
			renderWrapped(node, builder, "*")
			return
		case "i", "em":
			renderWrapped(node, builder, "_")
			return
		case "s", "strike", "del":
			renderWrapped(node, builder, "~")
			return
		case "code":
			renderWrapped(node, builder, "`")
			return
		case "li":
			builder.WriteString("\n• ")
		}
	}

	renderChildren(node, builder)

	if node.Type == html.ElementNode && isBlock(node.Data) {
		builder.WriteRune('\n')
	}
}

func renderChildren(node *html.Node, builder *strings.Builder) {
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		renderNode(child, builder)
	}
}

func renderWrapped(node *html.Node, builder *strings.Builder, marker string) {
	var inner strings.Builder
	renderChildren(node, &inner)
	text := strings.TrimSpace(inner.String())
	if text == "" {
		return
	}
	builder.WriteString(marker)
	builder.WriteString(text)
	builder.WriteString(marker)
}

func renderLink(node *html.Node, builder *strings.Builder) {
	var inner strings.Builder
	renderChildren(node, &inner)
	label := strings.TrimSpace(inner.String())

	href := strings.TrimSpace(attr(node, "href"))
	switch {
	case href == "":
		builder.WriteString(label)
	case label == "" || label == href:
		builder.WriteString("<" + href + ">")
	default:
		builder.WriteString("<" + href + "|" + label + ">")
	}
}

func attr(node *html.Node, key string) string {
	for _, a := range node.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func isBlock(tag string) bool {
	switch tag {
	case "p", "div", "li", "ul", "ol", "tr", "blockquote", "pre",
		"h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}

// tidyLines collapses runs of whitespace and drops empty lines.
func tidyLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
