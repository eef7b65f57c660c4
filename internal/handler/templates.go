package handler

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

func LoadTemplates(r *gin.Engine) {
	r.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))
}
