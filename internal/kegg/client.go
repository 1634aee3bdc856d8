// internal/kegg/client.go
package kegg

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the public KEGG REST endpoint.
const DefaultBaseURL = "https://rest.kegg.jp"

// DefaultTimeout bounds each KEGG request.
const DefaultTimeout = 10 * time.Second

// Client speaks the KEGG REST text protocol: plain GETs returning flat-file
// records or tab-separated tables.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a client for the public endpoint with DefaultTimeout.
func NewClient() *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

func (c *Client) base() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	return DefaultBaseURL
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// FetchOrthology retrieves an orthology record by K number.
func (c *Client) FetchOrthology(ctx context.Context, koID string) (Entry, error) {
	id := strings.TrimSpace(koID)
	if !strings.HasPrefix(id, "K") {
		return Entry{}, fmt.Errorf("kegg: orthology id %q must start with K", koID)
	}
	return c.fetchEntry(ctx, id)
}

// FetchGene retrieves one gene record by its species-qualified id
// ("hsa:7157" form).
func (c *Client) FetchGene(ctx context.Context, geneID string) (Entry, error) {
	id := strings.TrimSpace(geneID)
	if !strings.Contains(id, ":") {
		return Entry{}, fmt.Errorf("kegg: gene id %q must be species:gene", geneID)
	}
	return c.fetchEntry(ctx, id)
}

func (c *Client) fetchEntry(ctx context.Context, id string) (Entry, error) {
	url := c.base() + "/get/" + id
	body, status, err := c.get(ctx, url)
	if err != nil {
		return Entry{}, &TransportError{URL: url, Err: err}
	}
	if status != http.StatusOK {
		return Entry{}, &NotFoundError{ID: id, Reason: fmt.Sprintf("status %d", status)}
	}
	text := string(body)
	lower := strings.ToLower(text)
	switch {
	case strings.TrimSpace(text) == "":
		return Entry{}, &NotFoundError{ID: id, Reason: "empty body"}
	case strings.Contains(lower, "not found"), strings.Contains(lower, "<error>"):
		return Entry{}, &NotFoundError{ID: id, Reason: "error page"}
	case !strings.Contains(text, "ENTRY"):
		return Entry{}, &NotFoundError{ID: id, Reason: "no ENTRY line"}
	}
	return Entry{ID: id, Text: text}, nil
}

// Organism is one row of the /list/organism table.
type Organism struct {
	TaxID  string // KEGG T number, e.g. "T01001"
	Code   string // species code, e.g. "hsa"
	Latin  string // lowercased Latin name
	Common string // lowercased common name; empty when the row has none
}

// ListOrganisms downloads the complete organism table. Rows with fewer than
// three tab-separated fields are skipped; an empty table is an error because
// it usually means the wire format changed.
func (c *Client) ListOrganisms(ctx context.Context) ([]Organism, error) {
	url := c.base() + "/list/organism"
	body, status, err := c.get(ctx, url)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("kegg: list organism: status %d", status)
	}
	orgs := parseOrganisms(string(body))
	if len(orgs) == 0 {
		return nil, fmt.Errorf("kegg: list organism: no parseable rows")
	}
	return orgs, nil
}

func parseOrganisms(text string) []Organism {
	var out []Organism
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			continue
		}
		latin, common := SplitOrganismName(fields[2])
		out = append(out, Organism{
			TaxID:  strings.TrimSpace(fields[0]),
			Code:   strings.TrimSpace(fields[1]),
			Latin:  latin,
			Common: common,
		})
	}
	return out
}

// SplitOrganismName splits "Homo sapiens (human)" into Latin and common
// parts, both lowercased. Names without a parenthesized part have an empty
// common name.
func SplitOrganismName(full string) (latin, common string) {
	full = strings.TrimSpace(full)
	open := strings.IndexByte(full, '(')
	if open < 0 {
		return strings.ToLower(full), ""
	}
	latin = strings.ToLower(strings.TrimSpace(full[:open]))
	rest := full[open+1:]
	if end := strings.IndexByte(rest, ')'); end >= 0 {
		rest = rest[:end]
	}
	common = strings.ToLower(strings.TrimSpace(rest))
	return latin, common
}

// JoinGeneID builds the species-qualified gene id used by /get. Codes are
// lowercase on the wire even though GENES blocks print them uppercase.
func JoinGeneID(speciesCode, gene string) string {
	return strings.ToLower(strings.TrimSpace(speciesCode)) + ":" + strings.TrimSpace(gene)
}

func (c *Client) get(ctx context.Context, url string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, err
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}
	return body, resp.StatusCode, nil
}
