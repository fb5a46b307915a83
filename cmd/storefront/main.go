package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/manevdusko/fitbody-sub000/internal/cart"
	"github.com/manevdusko/fitbody-sub000/internal/catalog"
	"github.com/manevdusko/fitbody-sub000/internal/config"
	"github.com/manevdusko/fitbody-sub000/internal/httpapi"
	"github.com/manevdusko/fitbody-sub000/internal/i18n"
	"github.com/manevdusko/fitbody-sub000/internal/sitemap"
	"github.com/manevdusko/fitbody-sub000/internal/wordpress"
)

func main() {
	if os.Getenv("ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf(".env not found, using environment as-is")
		}
	}

	cfg := config.Load()

	// WordPress client with instrumented outbound transport
	wp := wordpress.NewClient(cfg.WordPressBaseURL, otelhttp.NewTransport(http.DefaultTransport))
	log.Printf("Using WordPress backend at %s", cfg.WordPressBaseURL)

	// Redis cache for catalog reads. The backend stays authoritative;
	// losing Redis only loses the read cache, so a failed ping is a
	// warning, not a crash.
	ctx := context.Background()
	var cache catalog.Cache
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Printf("Redis unavailable, catalog cache disabled: %v", err)
	} else {
		log.Printf("Redis ping succeeded")
		cache = catalog.NewRedisCache(redisClient)
	}

	catalogService := catalog.NewService(wp, cache)
	translator := i18n.New(cfg.LocalesDir)

	sessions := cart.NewStore(wp, cfg.SessionTTL)
	defer sessions.Close()

	sitemapBuilder := sitemap.NewBuilder(cfg.SiteBaseURL, catalogService)

	router := httpapi.NewRouter(httpapi.Handlers{
		Cart:          httpapi.NewCartHandler(translator, catalogService, cfg.RequestTimeout),
		Products:      httpapi.NewProductHandler(catalogService, cfg.RequestTimeout),
		Blog:          httpapi.NewBlogHandler(wp, cfg.RequestTimeout),
		Checkout:      httpapi.NewCheckoutHandler(wp, translator, cfg.RequestTimeout),
		Dealer:        httpapi.NewDealerHandler(wp, cfg.RequestTimeout),
		Notifications: httpapi.NewNotificationHandler(),
		Language:      httpapi.NewLanguageHandler(),
		Sitemap:       httpapi.NewSitemapHandler(sitemapBuilder, cfg.RequestTimeout),
	}, sessions)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: otelhttp.NewHandler(router, "storefront"),
	}

	go func() {
		log.Printf("Storefront starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
