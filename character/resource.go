package character

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"atlas-characters/inventory"
	"atlas-characters/item"
	"atlas-characters/kafka/producer"
	"atlas-characters/rest"
	"github.com/Chronicle20/atlas-rest/server"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jtumidanski/api2go/jsonapi"
	"github.com/sirupsen/logrus"
)

// ProducerFactory builds the producer used by routes that emit events
type ProducerFactory func(l logrus.FieldLogger) func(ctx context.Context) producer.Provider

// InitializeRoutes registers the character stamina and inventory routes
func InitializeRoutes(r *Registry, pp ProducerFactory) func(serverInfo jsonapi.ServerInformation) func(router *mux.Router, logger logrus.FieldLogger) {
	return func(serverInfo jsonapi.ServerInformation) func(router *mux.Router, logger logrus.FieldLogger) {
		return func(router *mux.Router, logger logrus.FieldLogger) {
			router.HandleFunc("/characters/{characterId}/stamina",
				rest.RegisterHandler(logger)(serverInfo)("get_character_stamina", getStaminaHandler(r))).
				Methods(http.MethodGet)

			router.HandleFunc("/characters/{characterId}/inventory",
				rest.RegisterHandler(logger)(serverInfo)("get_character_inventory", getInventoryHandler(r))).
				Methods(http.MethodGet)

			router.HandleFunc("/characters/{characterId}/inventory/items",
				rest.RegisterInputHandler[PickUpRequest](logger)(serverInfo)("pick_up_item", pickUpHandler(r, pp))).
				Methods(http.MethodPost)
		}
	}
}

func getStaminaHandler(reg *Registry) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParseCharacterId(d.Logger(), func(characterId uint32) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				m, err := NewProcessor(d.Logger(), d.Context(), reg).GetById(characterId)
				if err != nil {
					writeErrorResponse(w, statusFor(err), err.Error())
					return
				}
				rm, err := TransformStamina(m)
				if err != nil {
					writeErrorResponse(w, http.StatusInternalServerError, "Failed to transform stamina data")
					return
				}

				query := r.URL.Query()
				queryParams := jsonapi.ParseQueryFields(&query)
				server.MarshalResponse[RestStamina](d.Logger())(w)(c.ServerInformation())(queryParams)(rm)
			}
		})
	}
}

func getInventoryHandler(reg *Registry) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParseCharacterId(d.Logger(), func(characterId uint32) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				m, err := NewProcessor(d.Logger(), d.Context(), reg).GetById(characterId)
				if err != nil {
					writeErrorResponse(w, statusFor(err), err.Error())
					return
				}
				rm, err := TransformInventory(m)
				if err != nil {
					writeErrorResponse(w, http.StatusInternalServerError, "Failed to transform inventory data")
					return
				}

				query := r.URL.Query()
				queryParams := jsonapi.ParseQueryFields(&query)
				server.MarshalResponse[RestInventory](d.Logger())(w)(c.ServerInformation())(queryParams)(rm)
			}
		})
	}
}

func pickUpHandler(reg *Registry, pp ProducerFactory) rest.InputHandler[PickUpRequest] {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext, input PickUpRequest) http.HandlerFunc {
		return rest.ParseCharacterId(d.Logger(), func(characterId uint32) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				p := NewProcessor(d.Logger(), d.Context(), reg).WithProducer(pp(d.Logger())(d.Context()))
				m, err := p.PickUpAndEmit(uuid.New(), characterId, input.Data.Attributes.ItemId)
				if err != nil {
					writeErrorResponse(w, statusFor(err), err.Error())
					return
				}
				rm, err := TransformInventory(m)
				if err != nil {
					writeErrorResponse(w, http.StatusInternalServerError, "Failed to transform inventory data")
					return
				}

				query := r.URL.Query()
				queryParams := jsonapi.ParseQueryFields(&query)
				server.MarshalResponse[RestInventory](d.Logger())(w)(c.ServerInformation())(queryParams)(rm)
			}
		})
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, item.ErrNotFound):
		return http.StatusBadRequest
	case errors.Is(err, inventory.ErrCapacityExceeded):
		return http.StatusConflict
	case errors.Is(err, inventory.ErrIndexOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeErrorResponse writes a JSON error response
func writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errorResponse := map[string]interface{}{
		"error": map[string]interface{}{
			"status": statusCode,
			"title":  http.StatusText(statusCode),
			"detail": message,
		},
	}

	_ = json.NewEncoder(w).Encode(errorResponse)
}
