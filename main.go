package main

import (
	"log"

	"github.com/plumehq/plume/config"
	"github.com/plumehq/plume/db"
	"github.com/plumehq/plume/mailingservices"
	"github.com/plumehq/plume/server"
	"github.com/plumehq/plume/services"
)

func main() {
	conf, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Initialize Mailgun client
	mailgunClient := &mailingservices.Mailgun{}
	mailgunClient.Init()

	gormDB := db.GetDB(conf)
	authRepo := db.NewAuthRepo(gormDB)
	postRepo := db.NewPostRepo(gormDB)
	groupRepo := db.NewGroupRepo(gormDB)
	commentRepo := db.NewCommentRepo(gormDB)
	followRepo := db.NewFollowRepo(gormDB)

	authService := services.NewAuthService(authRepo, conf)
	postService := services.NewPostService(postRepo, groupRepo, commentRepo, conf)
	feedService := services.NewFeedService(postRepo, groupRepo, authRepo, followRepo, conf)
	commentService := services.NewCommentService(commentRepo, postRepo, conf)
	followService := services.NewFollowService(followRepo, authRepo, conf)
	mediaService := services.NewMediaService(conf)

	s := &server.Server{
		Mail:             mailgunClient,
		Config:           conf,
		AuthRepository:   authRepo,
		AuthService:      authService,
		PostRepository:   postRepo,
		PostService:      postService,
		FeedService:      feedService,
		CommentService:   commentService,
		FollowService:    followService,
		MediaService:     mediaService,
		GroupRepository:  groupRepo,
		FollowRepository: followRepo,
		DB:               db.GormDB{},
	}

	s.Start()
}
