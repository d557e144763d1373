package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/bwmarrin/discordgo"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/delacruz-wedding/wedding-api/internal/auth"
	"github.com/delacruz-wedding/wedding-api/internal/blob"
	"github.com/delacruz-wedding/wedding-api/internal/config"
	"github.com/delacruz-wedding/wedding-api/internal/database"
	"github.com/delacruz-wedding/wedding-api/internal/handlers"
	"github.com/delacruz-wedding/wedding-api/internal/notifier"
	"github.com/delacruz-wedding/wedding-api/internal/qr"
	"github.com/delacruz-wedding/wedding-api/internal/registry"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg := config.LoadConfig()

	stores, err := database.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open storage")
	}

	storage, err := blob.NewOSSStorage(cfg.OSSEndpoint, cfg.OSSBucket, cfg.OSSAccessKeyID, cfg.OSSAccessKeySecret)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to object storage")
	}

	var rsvpNotifier notifier.Notifier
	if cfg.DiscordBotToken != "" {
		session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
		if err != nil {
			log.Warn().Err(err).Msg("discord notifier not initialized")
		} else {
			rsvpNotifier = notifier.NewDiscordNotifier(session, cfg.DiscordNotificationsChannelID, log)
		}
	}

	additionalRegistry := registry.NewAdditionalGuestRegistry(stores.AdditionalGuests)
	guestRegistry := registry.NewGuestRegistry(stores.Guests, stores.RSVPs, additionalRegistry, log)
	ledger := registry.NewRSVPLedger(stores.Guests, stores.AdditionalGuests, stores.RSVPs, log)
	gallery := registry.NewGallery(stores.Gallery, stores.Preview, storage, log)

	authHandler := auth.NewAuthHandler(cfg)
	qrGen := qr.NewGenerator(cfg.QRServiceURL, cfg.PublicURL)

	rsvpHandler := handlers.NewRSVPHandler(guestRegistry, additionalRegistry, ledger, stores.RSVPSettings, rsvpNotifier, log)
	guestHandler := handlers.NewGuestHandler(guestRegistry, qrGen, log)
	additionalHandler := handlers.NewAdditionalGuestHandler(additionalRegistry, log)
	galleryHandler := handlers.NewGalleryHandler(gallery, stores.UploadSettings, rsvpNotifier, log)
	settingsHandler := handlers.NewSettingsHandler(stores.Preview, stores.RSVPSettings, stores.UploadSettings, log)

	r := chi.NewRouter()
	handlers.RegisterRoutes(r, authHandler, rsvpHandler, guestHandler, additionalHandler, galleryHandler, settingsHandler)

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
