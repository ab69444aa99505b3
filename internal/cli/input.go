package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/ZanzyTHEbar/voicetracer/internal/ingest"
)

const stdinArg = "-"

var errStdinTwice = errors.New("only one input may be read from stdin")

// readDocuments loads each path with the ingest parsers. "-" reads plain
// text from stdin and may appear at most once.
func readDocuments(stdin io.Reader, paths ...string) ([]string, error) {
	seenStdin := false
	texts := make([]string, len(paths))
	for i, path := range paths {
		var (
			doc *ingest.Document
			err error
		)
		if path == stdinArg {
			if seenStdin {
				return nil, errStdinTwice
			}
			seenStdin = true
			doc, err = ingest.ParseReader("stdin.txt", stdin, ingest.DefaultMaxBytes)
		} else {
			doc, err = ingest.ParseFile(path, ingest.DefaultMaxBytes)
		}
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		texts[i] = doc.Text
	}
	return texts, nil
}
