// internal/blast/client.go
package blast

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the public NCBI BLAST URL API endpoint.
const DefaultBaseURL = "https://blast.ncbi.nlm.nih.gov/Blast.cgi"

// DefaultTimeout bounds each individual request. Jobs themselves run far
// longer than this; the timeout only covers one HTTP round trip.
const DefaultTimeout = 60 * time.Second

const (
	// DefaultPollInterval separates consecutive status checks.
	DefaultPollInterval = 30 * time.Second
	// DefaultInitialMargin pads the server's own completion estimate before
	// the first status check.
	DefaultInitialMargin = 5 * time.Second
	// DefaultRTOE stands in when the submission response carries no usable
	// RTOE marker.
	DefaultRTOE = 15 * time.Second
	// DefaultMaxPolls caps status checks per job. At the default interval
	// that is a one hour ceiling on top of the initial wait.
	DefaultMaxPolls = 120
)

// Query is one job submission.
type Query struct {
	Program     string // blastn, blastp, blastx, tblastn, tblastx
	Database    string // nt, nr, refseq_rna, ...
	Sequence    string // bare residues, no FASTA header
	EntrezQuery string // optional filter such as "txid9606[ORGN]"
}

// Submission identifies an accepted job.
type Submission struct {
	RID  string
	RTOE time.Duration // server's completion estimate
}

// Client drives the submit/poll/fetch cycle of the BLAST URL API. The zero
// value uses the public endpoint and the default pacing; NewClient fills in
// an HTTP client with DefaultTimeout.
type Client struct {
	BaseURL       string
	HTTPClient    *http.Client
	PollInterval  time.Duration
	InitialMargin time.Duration
	// MaxPolls caps status checks per job. Zero means the default; negative
	// means unbounded, which reproduces upstream behavior at the cost of
	// hanging on a wedged job.
	MaxPolls int

	// sleep replaces real waiting in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewClient returns a client for the public endpoint with default pacing.
func NewClient() *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

func (c *Client) base() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return DefaultBaseURL
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) pollInterval() time.Duration {
	if c.PollInterval > 0 {
		return c.PollInterval
	}
	return DefaultPollInterval
}

// Negative InitialMargin means no margin at all, mirroring the MaxPolls
// convention of negative-for-off.
func (c *Client) initialMargin() time.Duration {
	if c.InitialMargin > 0 {
		return c.InitialMargin
	}
	if c.InitialMargin < 0 {
		return 0
	}
	return DefaultInitialMargin
}

func (c *Client) maxPolls() int {
	if c.MaxPolls != 0 {
		return c.MaxPolls
	}
	return DefaultMaxPolls
}

// Submit posts a query and scans the response for the RID and RTOE markers.
// A response without an RID is an error; a missing or garbled RTOE falls
// back to DefaultRTOE.
func (c *Client) Submit(ctx context.Context, q Query) (Submission, error) {
	if strings.TrimSpace(q.Sequence) == "" {
		return Submission{}, fmt.Errorf("blast: empty query sequence")
	}
	form := url.Values{
		"CMD":      {"Put"},
		"PROGRAM":  {q.Program},
		"DATABASE": {q.Database},
		"QUERY":    {q.Sequence},
	}
	if q.EntrezQuery != "" {
		form.Set("ENTREZ_QUERY", q.EntrezQuery)
	}
	body, status, err := c.postForm(ctx, form)
	if err != nil {
		return Submission{}, fmt.Errorf("blast: submit: %w", err)
	}
	if status != http.StatusOK {
		return Submission{}, fmt.Errorf("blast: submit: status %d", status)
	}
	rid, ok := ScanMarker(body, "RID")
	if !ok || rid == "" {
		return Submission{}, fmt.Errorf("blast: submission response carries no RID")
	}
	rtoe := DefaultRTOE
	if raw, ok := ScanMarker(body, "RTOE"); ok {
		if secs, err := strconv.Atoi(raw); err == nil {
			rtoe = time.Duration(secs) * time.Second
		}
	}
	return Submission{RID: rid, RTOE: rtoe}, nil
}

// PollStatus runs one SearchInfo check. The body is scanned for status
// markers regardless of HTTP status; a body without markers reads as
// StatusWaiting.
func (c *Client) PollStatus(ctx context.Context, rid string) (Status, error) {
	body, _, err := c.get(ctx, url.Values{
		"CMD":           {"Get"},
		"FORMAT_OBJECT": {"SearchInfo"},
		"RID":           {rid},
	})
	if err != nil {
		return StatusWaiting, fmt.Errorf("blast: poll %s: %w", rid, err)
	}
	return ScanStatus(body), nil
}

// FetchResult downloads the plain-text alignment report for a finished job.
func (c *Client) FetchResult(ctx context.Context, rid string) (string, error) {
	body, status, err := c.get(ctx, url.Values{
		"CMD":           {"Get"},
		"RID":           {rid},
		"FORMAT_TYPE":   {"Text"},
		"FORMAT_OBJECT": {"Alignment"},
	})
	if err != nil {
		return "", fmt.Errorf("blast: fetch %s: %w", rid, err)
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("blast: fetch %s: status %d", rid, status)
	}
	return body, nil
}

// Wait blocks until the job leaves POLLING: an initial RTOE+margin sleep,
// then fixed-interval status checks. READY returns nil; FAILED and UNKNOWN
// return their typed errors; running out of poll budget returns
// PollBudgetError. Cancelling ctx interrupts any sleep in progress.
func (c *Client) Wait(ctx context.Context, sub Submission) error {
	if err := c.doSleep(ctx, sub.RTOE+c.initialMargin()); err != nil {
		return err
	}
	polls := 0
	for {
		st, err := c.PollStatus(ctx, sub.RID)
		if err != nil {
			return err
		}
		switch st {
		case StatusReady:
			return nil
		case StatusFailed:
			return &JobFailedError{RID: sub.RID}
		case StatusUnknown:
			return &UnknownJobError{RID: sub.RID}
		}
		polls++
		if budget := c.maxPolls(); budget > 0 && polls >= budget {
			return &PollBudgetError{RID: sub.RID, Polls: polls}
		}
		if err := c.doSleep(ctx, c.pollInterval()); err != nil {
			return err
		}
	}
}

// Run is the whole cycle for one query: submit, wait, fetch, parse.
func (c *Client) Run(ctx context.Context, q Query) ([]Hit, error) {
	sub, err := c.Submit(ctx, q)
	if err != nil {
		return nil, err
	}
	if err := c.Wait(ctx, sub); err != nil {
		return nil, err
	}
	text, err := c.FetchResult(ctx, sub.RID)
	if err != nil {
		return nil, err
	}
	return ParseText(text), nil
}

func (c *Client) doSleep(ctx context.Context, d time.Duration) error {
	if c.sleep != nil {
		return c.sleep(ctx, d)
	}
	return sleepContext(ctx, d)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (c *Client) postForm(ctx context.Context, form url.Values) (string, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base(), strings.NewReader(form.Encode()))
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

func (c *Client) get(ctx context.Context, query url.Values) (string, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base()+"?"+query.Encode(), nil)
	if err != nil {
		return "", 0, err
	}
	return c.do(req)
}

func (c *Client) do(req *http.Request) (string, int, error) {
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, err
	}
	return string(body), resp.StatusCode, nil
}
