package format

import (
	"encoding/json"
	"fmt"
	"io"

	ghub "github.com/stahnma/gh-repopick/internal/github"
)

// WriteJSON writes indented JSON to w.
func WriteJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

// WriteNames writes one owner/name per line.
func WriteNames(w io.Writer, repos []ghub.Repo) error {
	for _, r := range repos {
		if _, err := fmt.Fprintln(w, r.FullName); err != nil {
			return err
		}
	}
	return nil
}

// WriteStars writes one "owner/name,stars" per line.
func WriteStars(w io.Writer, repos []ghub.Repo) error {
	for _, r := range repos {
		if _, err := fmt.Fprintf(w, "%s,%d\n", r.FullName, r.Stars); err != nil {
			return err
		}
	}
	return nil
}
