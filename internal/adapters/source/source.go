// Package source provides the DataSource implementations the dataset is loaded from.
package source

import (
	"net/http"
	"strings"
	"time"

	portsrepo "github.com/SscSPs/price_dashboard/internal/core/ports/repositories"
)

// maxBodyBytes caps how much of a remote CSV is read.
const maxBodyBytes = 32 << 20

// New returns an HTTPSource for http(s) URLs and a FileSource for anything else.
func New(location string, timeout time.Duration) portsrepo.DataSource {
	lower := strings.ToLower(location)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return NewHTTPSource(location, &http.Client{Timeout: timeout})
	}
	return NewFileSource(location)
}
