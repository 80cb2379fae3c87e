package custom

import (
	"net/http"

	"github.com/littletreasures/hotel-media-repo/api/responses"
	"github.com/littletreasures/hotel-media-repo/common/rcontext"
	"github.com/littletreasures/hotel-media-repo/common/version"
)

func GetVersion(r *http.Request, rctx rcontext.RequestContext) interface{} {
	version.SetDefaults()
	return &responses.DoNotCacheResponse{
		Payload: map[string]interface{}{
			"Version":   version.Version,
			"GitCommit": version.GitCommit,
		},
	}
}
