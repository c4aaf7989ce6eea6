package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/kcoproperties/leasing-api/internal/service"
	"github.com/kcoproperties/leasing-api/pkg/auth"
	"github.com/kcoproperties/leasing-api/pkg/config"
	"github.com/kcoproperties/leasing-api/pkg/logger"
)

type claimsKeyType struct{}

var claimsKey claimsKeyType

type Handlers struct {
	tourService        service.TourService
	propertyService    service.PropertyService
	unitService        service.UnitService
	applicationService service.ApplicationService
	contactService     service.ContactService
	maintenanceService service.MaintenanceService
	leaseService       service.LeaseService
	authService        service.AuthService
	config             *config.Config
}

func New(
	tourService service.TourService,
	propertyService service.PropertyService,
	unitService service.UnitService,
	applicationService service.ApplicationService,
	contactService service.ContactService,
	maintenanceService service.MaintenanceService,
	leaseService service.LeaseService,
	authService service.AuthService,
	cfg *config.Config,
) *Handlers {
	return &Handlers{
		tourService:        tourService,
		propertyService:    propertyService,
		unitService:        unitService,
		applicationService: applicationService,
		contactService:     contactService,
		maintenanceService: maintenanceService,
		leaseService:       leaseService,
		authService:        authService,
		config:             cfg,
	}
}

// RequireJWT authenticates the bearer token and enforces the given role.
// Admins pass any role check.
func (h *Handlers) RequireJWT(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				writeError(w, http.StatusUnauthorized, "Missing or invalid authorization header")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := auth.Parse(token, h.config.Auth.JWTSecret)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			if requiredRole != "" && claims.Role != requiredRole && claims.Role != "admin" {
				writeError(w, http.StatusForbidden, "Insufficient permissions")
				return
			}

			ctx := context.WithValue(r.Context(), logger.UserIDKey, claims.Sub)
			ctx = context.WithValue(ctx, claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func getClaims(r *http.Request) *auth.Claims {
	if claims, ok := r.Context().Value(claimsKey).(*auth.Claims); ok {
		return claims
	}
	return nil
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeServiceError maps a service error to a response. Validation failures
// are the caller's fault and come back as 400; anything else is a 500.
func writeServiceError(w http.ResponseWriter, err error) {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		writeError(w, http.StatusBadRequest, ve.Msg)
		return
	}
	logger.Error("Unhandled service error", "error", err)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

func parsePagination(r *http.Request) (limit, offset int) {
	limit = 20
	offset = 0

	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	return limit, offset
}
