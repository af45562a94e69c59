package searchbox

import (
	"github.com/nonibytes/searchbox/searchbox/userdir"
)

const (
	DefaultUserCacheTTL = userdir.DefaultTTL
	DefaultSpace        = "default"
)
