package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/delacruz-wedding/wedding-api/internal/auth"
)

// RegisterRoutes wires the public API onto the root router and mounts
// the admin API behind the shared-credential middleware at /admin.
func RegisterRoutes(
	r *chi.Mux,
	authHandler *auth.AuthHandler,
	rsvpHandler *RSVPHandler,
	guestHandler *GuestHandler,
	additionalHandler *AdditionalGuestHandler,
	galleryHandler *GalleryHandler,
	settingsHandler *SettingsHandler,
) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	api := humachi.New(r, huma.DefaultConfig("Wedding Site API", "1.0.0"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Public guest-facing routes
	huma.Get(api, "/rsvp/status", rsvpHandler.HandleStatus)
	huma.Get(api, "/rsvp/{guestID}", rsvpHandler.HandlePage)
	huma.Post(api, "/rsvp", rsvpHandler.HandleSubmit)
	huma.Get(api, "/gallery", galleryHandler.HandleListPublic)
	huma.Get(api, "/gallery/preview", galleryHandler.HandlePreview)
	huma.Get(api, "/gallery/status", galleryHandler.HandleUploadStatus)
	r.Post("/gallery/upload", galleryHandler.HandleUpload)

	// Login is the only unauthenticated admin-facing route.
	huma.Post(api, "/auth/login", authHandler.HandleLogin)

	// Admin routes live on their own sub-router so the credential
	// middleware covers every one of them.
	adminRouter := chi.NewRouter()
	adminRouter.Use(authHandler.AuthMiddleware)
	r.Mount("/admin", adminRouter)

	adminConfig := huma.DefaultConfig("Wedding Site Admin API", "1.0.0")
	adminConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"cookieAuth": {
			Type: "apiKey",
			In:   "cookie",
			Name: "auth_token",
		},
	}
	adminConfig.Security = []map[string][]string{{"cookieAuth": {}}}
	adminAPI := humachi.New(adminRouter, adminConfig)

	huma.Get(adminAPI, "/guests", guestHandler.HandleList)
	huma.Post(adminAPI, "/guests", guestHandler.HandleCreate)
	huma.Get(adminAPI, "/guests/{id}", guestHandler.HandleGet)
	huma.Put(adminAPI, "/guests/{id}", guestHandler.HandleUpdate)
	huma.Patch(adminAPI, "/guests/{id}", guestHandler.HandlePatch)
	huma.Delete(adminAPI, "/guests/{id}", guestHandler.HandleDelete)
	huma.Get(adminAPI, "/guests/{id}/qr", guestHandler.HandleQR)

	huma.Get(adminAPI, "/additional-guests", additionalHandler.HandleList)
	huma.Post(adminAPI, "/additional-guests", additionalHandler.HandleCreate)
	huma.Put(adminAPI, "/additional-guests/{id}", additionalHandler.HandleUpdate)
	huma.Delete(adminAPI, "/additional-guests/{id}", additionalHandler.HandleDelete)

	huma.Get(adminAPI, "/rsvps", rsvpHandler.HandleList)
	huma.Get(adminAPI, "/rsvps/{guestID}", rsvpHandler.HandleGet)

	huma.Get(adminAPI, "/gallery", galleryHandler.HandleListAdmin)
	huma.Patch(adminAPI, "/gallery/{id}/visibility", galleryHandler.HandleSetVisibility)
	huma.Delete(adminAPI, "/gallery/{id}", galleryHandler.HandleDelete)

	huma.Get(adminAPI, "/settings/preview", settingsHandler.HandleGetPreview)
	huma.Put(adminAPI, "/settings/preview", settingsHandler.HandlePutPreview)
	huma.Get(adminAPI, "/settings/rsvp", settingsHandler.HandleGetRSVP)
	huma.Put(adminAPI, "/settings/rsvp", settingsHandler.HandlePutRSVP)
	huma.Get(adminAPI, "/settings/upload", settingsHandler.HandleGetUpload)
	huma.Put(adminAPI, "/settings/upload", settingsHandler.HandlePutUpload)
}
