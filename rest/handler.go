package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"atlas-characters/tracing"
	"github.com/Chronicle20/atlas-tenant"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jtumidanski/api2go/jsonapi"
	"github.com/sirupsen/logrus"
)

const (
	HeaderTenantId     = "TENANT_ID"
	HeaderRegion       = "REGION"
	HeaderMajorVersion = "MAJOR_VERSION"
	HeaderMinorVersion = "MINOR_VERSION"
)

type HandlerDependency struct {
	l   logrus.FieldLogger
	ctx context.Context
}

func (h HandlerDependency) Logger() logrus.FieldLogger {
	return h.l
}

func (h HandlerDependency) Context() context.Context {
	return h.ctx
}

type HandlerContext struct {
	si jsonapi.ServerInformation
}

func (h HandlerContext) ServerInformation() jsonapi.ServerInformation {
	return h.si
}

type GetHandler func(d *HandlerDependency, c *HandlerContext) http.HandlerFunc

type InputHandler[M any] func(d *HandlerDependency, c *HandlerContext, model M) http.HandlerFunc

// ParseInput decodes the request body into M before handing off to next
func ParseInput[M any](d *HandlerDependency, c *HandlerContext, next InputHandler[M]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var model M
		if err := json.NewDecoder(r.Body).Decode(&model); err != nil {
			d.Logger().WithError(err).Error("Deserializing input.")
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		next(d, c, model)(w, r)
	}
}

// ParseTenant builds the request tenant from the tenant headers
func ParseTenant(h http.Header) (tenant.Model, error) {
	id, err := uuid.Parse(h.Get(HeaderTenantId))
	if err != nil {
		return tenant.Model{}, errors.New("invalid or missing tenant id")
	}
	region := h.Get(HeaderRegion)
	major, err := strconv.ParseUint(h.Get(HeaderMajorVersion), 10, 16)
	if err != nil {
		return tenant.Model{}, errors.New("invalid or missing major version")
	}
	minor, err := strconv.ParseUint(h.Get(HeaderMinorVersion), 10, 16)
	if err != nil {
		return tenant.Model{}, errors.New("invalid or missing minor version")
	}
	return tenant.Create(id, region, uint16(major), uint16(minor))
}

func withTenant(l logrus.FieldLogger, name string, next func(sl logrus.FieldLogger, ctx context.Context) http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sl, span := tracing.StartSpan(l, name)
		defer span.Finish()

		t, err := ParseTenant(r.Header)
		if err != nil {
			sl.WithError(err).Warn("Rejecting request without a valid tenant.")
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		sl = sl.WithField("tenant", t.Id().String())
		next(sl, tenant.WithContext(r.Context(), t))(w, r)
	}
}

// RegisterHandler wraps a handler with tracing and tenant resolution
func RegisterHandler(l logrus.FieldLogger) func(si jsonapi.ServerInformation) func(handlerName string, handler GetHandler) http.HandlerFunc {
	return func(si jsonapi.ServerInformation) func(handlerName string, handler GetHandler) http.HandlerFunc {
		return func(handlerName string, handler GetHandler) http.HandlerFunc {
			return withTenant(l, handlerName, func(sl logrus.FieldLogger, ctx context.Context) http.HandlerFunc {
				return handler(&HandlerDependency{l: sl, ctx: ctx}, &HandlerContext{si: si})
			})
		}
	}
}

// RegisterInputHandler wraps an input handler with tracing, tenant resolution and body decoding
func RegisterInputHandler[M any](l logrus.FieldLogger) func(si jsonapi.ServerInformation) func(handlerName string, handler InputHandler[M]) http.HandlerFunc {
	return func(si jsonapi.ServerInformation) func(handlerName string, handler InputHandler[M]) http.HandlerFunc {
		return func(handlerName string, handler InputHandler[M]) http.HandlerFunc {
			return withTenant(l, handlerName, func(sl logrus.FieldLogger, ctx context.Context) http.HandlerFunc {
				return ParseInput[M](&HandlerDependency{l: sl, ctx: ctx}, &HandlerContext{si: si}, handler)
			})
		}
	}
}

type CharacterIdHandler func(characterId uint32) http.HandlerFunc

// ParseCharacterId reads the characterId path variable
func ParseCharacterId(l logrus.FieldLogger, next CharacterIdHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		characterId, err := strconv.ParseUint(mux.Vars(r)["characterId"], 10, 32)
		if err != nil {
			l.WithError(err).Error("Unable to properly parse characterId from path.")
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		next(uint32(characterId))(w, r)
	}
}
