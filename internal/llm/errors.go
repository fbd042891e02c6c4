package llm

import "errors"

// ErrAllCredentialsFailed is the terminal outcome when every credential in
// the pool has been tried for one request and none succeeded. Callers decide
// whether this becomes a propagated fault or a degraded response.
var ErrAllCredentialsFailed = errors.New("all credentials failed")

// ErrNoCredentials is returned at startup when zero credentials are
// configured. This is fatal: the process must not start without a pool.
var ErrNoCredentials = errors.New("no API credentials configured")
