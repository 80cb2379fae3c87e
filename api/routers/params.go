package routers

import (
	"net/http"

	"github.com/gorilla/mux"
)

func GetParam(name string, r *http.Request) string {
	return mux.Vars(r)[name]
}
