package service

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

// The renderer is not in unsafe mode, so raw HTML in curatorial copy is omitted.
var wallTextEngine = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Typographer,
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithHardWraps(),
	),
)

// RenderWallText converts curatorial markdown (section intros, pair wall
// text, curatorial notes) to HTML.
func RenderWallText(markdown string) string {
	text := strings.TrimSpace(markdown)
	if text == "" {
		return ""
	}

	var out bytes.Buffer
	if err := wallTextEngine.Convert([]byte(text), &out); err != nil {
		return template.HTMLEscapeString(text)
	}
	return out.String()
}
