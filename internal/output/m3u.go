package output

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/mrclmr/a2m/internal/manifest"
)

// encodeM3U writes an extended m3u playlist. Lengths are unknown, so every
// entry gets -1. Urls are written as they are in the records and resolve
// relative to the playlist location.
func encodeM3U(records []manifest.Record) []byte {
	buf := &bytes.Buffer{}
	buf.WriteString("#EXTM3U\n")
	for _, r := range records {
		// Line breaks in a title would start a new playlist line.
		title := strings.NewReplacer("\r", " ", "\n", " ").Replace(norm.NFC.String(r.Title))
		_, _ = fmt.Fprintf(buf, "#EXTINF:-1,%s\n%s\n", title, r.URL)
	}
	return buf.Bytes()
}
