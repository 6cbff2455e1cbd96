package fetch

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// structureURL is the well-known per-id download location. The id is
// uppercased before substitution. A var so tests can point it at a local
// server.
var structureURL = "https://files.rcsb.org/download/%s.pdb"

const fetchTimeout = 30 * time.Second

// ErrFetchFailed marks a non-success response from the structure archive.
var ErrFetchFailed = errors.New("fetch failed")

// Structure retrieves the raw PDB text for a 4-character structure id.
func Structure(id string) (string, error) {
	id = strings.ToUpper(strings.TrimSpace(id))
	if len(id) != 4 {
		return "", fmt.Errorf("fetch: structure id must be 4 characters, got %q", id)
	}
	client := &http.Client{Timeout: fetchTimeout}
	resp, err := client.Get(fmt.Sprintf(structureURL, id))
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", id, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: HTTP %d: %w", id, resp.StatusCode, ErrFetchFailed)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", id, err)
	}
	return string(body), nil
}
