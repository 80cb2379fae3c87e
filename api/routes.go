package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/littletreasures/hotel-media-repo/api/custom"
	"github.com/littletreasures/hotel-media-repo/api/hotels"
	"github.com/littletreasures/hotel-media-repo/api/images"
	"github.com/littletreasures/hotel-media-repo/api/routers"
	"github.com/sirupsen/logrus"
)

func buildRoutes(s *services) http.Handler {
	counter := &routers.RequestCounter{}
	router := buildPrimaryRouter(counter)

	register(router, "/images/{name}", makeRoute(images.GetThumbnail(s.thumbnails), "thumbnail", counter))

	listRoute := makeRoute(hotels.ListHotels(s.hotels, s.publicBaseUrl), "list_hotels", counter)
	register(router, "/hotels", listRoute)
	register(router, "/hotels/", listRoute)
	// before /hotels/{name} so "search" is never taken as a hotel name
	register(router, "/hotels/search/geographicorder/{value}", makeRoute(hotels.SearchByGeographicOrder(s.hotels, s.publicBaseUrl), "search_geographic_order", counter))
	register(router, "/hotels/{name}", makeRoute(hotels.GetHotel(s.hotels, s.publicBaseUrl), "get_hotel", counter))

	register(router, "/healthz", makeRoute(custom.GetHealthz, "healthz", counter))
	register(router, "/version", makeRoute(custom.GetVersion, "get_version", counter))

	return &panicRecoveryHandler{next: router}
}

func makeRoute(generator routers.GeneratorFn, name string, counter *routers.RequestCounter) http.Handler {
	return routers.NewInstallMetadataRouter(name, counter,
		routers.NewInstallHeadersRouter(
			routers.NewMetricsRequestRouter(
				routers.NewRContextRouter(generator, routers.NewMetricsResponseRouter(nil)),
			),
		))
}

var optionsHandler = routers.NewInstallHeadersRouter(http.HandlerFunc(finishCorsFn))

func register(router *mux.Router, path string, handler http.Handler) {
	router.Handle(path, handler).Methods(http.MethodGet, http.MethodHead)
	router.Handle(path, optionsHandler).Methods(http.MethodOptions)
	logrus.Debug("Registering route: GET ", path)
}
