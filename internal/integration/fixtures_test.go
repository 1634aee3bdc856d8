// internal/integration/fixtures_test.go
package integration

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

const koRecord = "ENTRY       K00001                      KO\n" +
	"NAME        E1.1.1.1, adh\n" +
	"GENES       HSA: 124(ADH1A)\n" +
	"            ECO: b0356\n" +
	"///\n"

const organismTable = "T01001\thsa\tHomo sapiens (human)\tEukaryotes;Animals;Mammals\n" +
	"T00007\teco\tEscherichia coli K-12 MG1655\tProkaryotes;Bacteria\n" +
	"T01005\tptr\tPan troglodytes (chimpanzee)\tEukaryotes;Animals;Mammals\n"

func geneRecord(aa string) string {
	var b strings.Builder
	b.WriteString("ENTRY       124               CDS       T01001\n")
	b.WriteString(fmt.Sprintf("AASEQ       %d\n", len(aa)))
	b.WriteString("            " + aa + "\n")
	b.WriteString("///\n")
	return b.String()
}

// startKEGG serves the three text endpoints the tools touch.
func startKEGG(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/list/organism", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, organismTable)
	})
	mux.HandleFunc("/get/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/get/")
		switch id {
		case "K00001":
			_, _ = fmt.Fprint(w, koRecord)
		case "hsa:124(ADH1A)":
			_, _ = fmt.Fprint(w, geneRecord("MKTAYIAKQR"))
		case "eco:b0356":
			_, _ = fmt.Fprint(w, geneRecord("MSTAGKVIKC"))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = fmt.Fprint(w, "not found\n")
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// blastStats counts requests per phase for assertions.
type blastStats struct {
	submits, polls, fetches atomic.Int64
}

// startBLAST serves the Put/SearchInfo/Alignment cycle. pending controls how
// many status checks answer without a marker before READY.
func startBLAST(t *testing.T, pending int) (*httptest.Server, *blastStats) {
	t.Helper()
	stats := &blastStats{}
	h := func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			stats.submits.Add(1)
			_, _ = fmt.Fprint(w, "    RID = ITESTRID\n    RTOE = 0\n")
			return
		}
		q := r.URL.Query()
		if q.Get("FORMAT_OBJECT") == "SearchInfo" {
			n := stats.polls.Add(1)
			if int(n) <= pending {
				_, _ = fmt.Fprint(w, "Status=WAITING\n")
				return
			}
			_, _ = fmt.Fprint(w, "Status=READY\n")
			return
		}
		stats.fetches.Add(1)
		_, _ = fmt.Fprint(w, ">alcohol dehydrogenase [test organism]\n"+
			" Score = 55.5 bits (120),  Expect = 2e-31\n"+
			"Identities = 50/60\n")
	}
	srv := httptest.NewServer(http.HandlerFunc(h))
	t.Cleanup(srv.Close)
	return srv, stats
}
