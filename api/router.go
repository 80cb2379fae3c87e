package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gorilla/mux"
	"github.com/littletreasures/hotel-media-repo/api/responses"
	"github.com/littletreasures/hotel-media-repo/api/routers"
	"github.com/littletreasures/hotel-media-repo/common/rcontext"
	"github.com/littletreasures/hotel-media-repo/util"
	"github.com/sirupsen/logrus"
)

func buildPrimaryRouter(counter *routers.RequestCounter) *mux.Router {
	router := mux.NewRouter()
	router.StrictSlash(false)
	router.NotFoundHandler = makeRoute(notFoundFn, "not_found", counter)
	router.MethodNotAllowedHandler = makeRoute(methodNotAllowedFn, "method_not_allowed", counter)
	return router
}

func methodNotAllowedFn(r *http.Request, rctx rcontext.RequestContext) interface{} {
	return responses.MethodNotAllowed()
}

func notFoundFn(r *http.Request, rctx rcontext.RequestContext) interface{} {
	return responses.NotFoundError()
}

func finishCorsFn(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

type panicRecoveryHandler struct {
	next http.Handler
}

func (h *panicRecoveryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if i := recover(); i != nil {
			panicFn(w, r, i)
		}
	}()
	h.next.ServeHTTP(w, r)
}

func panicFn(w http.ResponseWriter, r *http.Request, i interface{}) {
	logrus.Errorf("Panic received on %s %s: %s", r.Method, util.GetLogSafeUrl(r), i)

	//goland:noinspection GoTypeAssertionOnErrors
	if e, ok := i.(error); ok {
		sentry.CaptureException(e)
	} else {
		sentry.CaptureMessage(fmt.Sprintf("Unknown panic received: %T %s %+v", i, i, i))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)

	b, err := json.Marshal(responses.InternalServerError(errors.New("unexpected error").Error()))
	if err != nil {
		sentry.CaptureException(fmt.Errorf("error preparing InternalServerError: %v", err))
		logrus.Errorf("error preparing InternalServerError: %v", err)
		return
	}
	_, _ = w.Write(b)
}
