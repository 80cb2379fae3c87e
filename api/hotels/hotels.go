package hotels

import (
	"errors"
	"net/http"

	"github.com/littletreasures/hotel-media-repo/api/responses"
	"github.com/littletreasures/hotel-media-repo/api/routers"
	"github.com/littletreasures/hotel-media-repo/common"
	"github.com/littletreasures/hotel-media-repo/common/rcontext"
	"github.com/littletreasures/hotel-media-repo/controllers/hotels_controller"
)

func ListHotels(svc *hotels_controller.HotelsService, publicBaseUrl string) routers.GeneratorFn {
	return func(r *http.Request, rctx rcontext.RequestContext) interface{} {
		return hotels_controller.NewSummaries(svc.All(), publicBaseUrl)
	}
}

func GetHotel(svc *hotels_controller.HotelsService, publicBaseUrl string) routers.GeneratorFn {
	return func(r *http.Request, rctx rcontext.RequestContext) interface{} {
		hotel, err := svc.FindByName(routers.GetParam("name", r))
		if err != nil {
			if errors.Is(err, common.ErrHotelNotFound) {
				return responses.NotFoundError()
			}
			return responses.BadRequest(err.Error())
		}
		summary := hotels_controller.NewSummary(*hotel, publicBaseUrl)
		return &summary
	}
}

func SearchByGeographicOrder(svc *hotels_controller.HotelsService, publicBaseUrl string) routers.GeneratorFn {
	return func(r *http.Request, rctx rcontext.RequestContext) interface{} {
		found, err := svc.FindByGeographicOrder(routers.GetParam("value", r))
		if err != nil {
			return responses.BadRequest(err.Error())
		}
		return hotels_controller.NewSummaries(found, publicBaseUrl)
	}
}
