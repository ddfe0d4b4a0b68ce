package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/plumehq/plume/config"
	"github.com/plumehq/plume/db"
	"github.com/plumehq/plume/mailingservices"
	"github.com/plumehq/plume/services"
)

// Server wires the configuration, repositories and services behind the
// HTTP handlers.
type Server struct {
	Config           *config.Config
	Mail             *mailingservices.Mailgun
	AuthRepository   db.AuthRepository
	AuthService      services.AuthService
	PostRepository   db.PostRepository
	PostService      services.PostService
	FeedService      services.FeedService
	CommentService   services.CommentService
	FollowService    services.FollowService
	MediaService     services.MediaService
	GroupRepository  db.GroupRepository
	FollowRepository db.FollowRepository
	DB               db.GormDB
}

// Start runs the HTTP server until interrupted
func (s *Server) Start() {
	r := s.setupRouter()

	port := s.Config.Port
	if port == 0 {
		port = 8080
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: r,
	}

	go func() {
		log.Infof("listening on :%d", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
}
