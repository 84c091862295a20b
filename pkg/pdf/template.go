package pdf

import (
	"bytes"
	"html/template"
	"time"
)

var emailTemplate = template.Must(template.New("email").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Georgia, serif; margin: 40px; color: #222; }
  .subject { font-size: 22px; font-weight: bold; margin-bottom: 4px; }
  .meta { color: #666; font-size: 12px; margin-bottom: 24px; }
  .body { font-size: 14px; line-height: 1.6; white-space: pre-wrap; }
</style>
</head>
<body>
  <div class="subject">{{.Subject}}</div>
  <div class="meta">Tone: {{.Tone}} &middot; Generated {{.GeneratedAt}}</div>
  <div class="body">{{.Body}}</div>
</body>
</html>`))

// RenderEmailHTML renders an email record as the printable HTML page used
// for PDF export.
func RenderEmailHTML(subject, toneName, body string, generatedAt time.Time) (string, error) {
	var buf bytes.Buffer
	err := emailTemplate.Execute(&buf, map[string]string{
		"Subject":     subject,
		"Tone":        toneName,
		"Body":        body,
		"GeneratedAt": generatedAt.Format("Jan 2, 2006 15:04"),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
