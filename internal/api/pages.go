package api

import (
	"html"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"scribe/internal/utils"
)

// cacheFilesHTML handles GET /cache-files/list: the same listing as
// /cache-files, rendered as an HTML table. All interpolated values are
// escaped because the original upload file name flows into this page.
func cacheFilesHTML(c *gin.Context) {
	files, err := store.List()
	if err != nil {
		log.Printf("[Cache] List error: %v", err)
		utils.Error(c, http.StatusInternalServerError, "failed to list cache files")
		return
	}

	var rows strings.Builder
	for _, f := range files {
		rows.WriteString("<tr><td>")
		rows.WriteString(html.EscapeString(f.ID))
		rows.WriteString("</td><td>")
		rows.WriteString(html.EscapeString(f.DateAndTime))
		rows.WriteString("</td><td>")
		rows.WriteString(html.EscapeString(f.FileName))
		rows.WriteString("</td></tr>")
	}
	if rows.Len() == 0 {
		rows.WriteString(`<tr><td colspan="3">No cache files</td></tr>`)
	}

	page := `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Cache files</title></head>
<body>
<h1>Cache files</h1>
<p><a href="/docs">API docs</a></p>
<table border="1" cellpadding="6">
<thead><tr><th>temp_cache_file_id</th><th>date_and_time</th><th>file_name</th></tr></thead>
<tbody>` + rows.String() + `</tbody>
</table>
</body>
</html>`

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

const docsHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Transcription API</title></head>
<body>
<h1>Transcription API</h1>
<p>Upload any FFmpeg-supported audio/video file and get a Whisper transcript.</p>
<table border="1" cellpadding="6">
<thead><tr><th>Endpoint</th><th>Description</th></tr></thead>
<tbody>
<tr><td><code>POST /transcribe</code></td><td>Multipart field <code>file</code>; query <code>output</code> is a comma-separated subset of <code>full, text, segment, segments, language, gen_cache</code> (default <code>full</code>).</td></tr>
<tr><td><code>GET /cache-files</code></td><td>JSON listing of cached transcripts.</td></tr>
<tr><td><code>GET /cache-files/list</code></td><td>HTML listing of cached transcripts.</td></tr>
<tr><td><code>GET /health</code></td><td>Service status and configured model.</td></tr>
</tbody>
</table>
</body>
</html>`

// docsPage serves a static endpoint reference
func docsPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(docsHTML))
}
