package app

import (
	"log"
	"os"

	"github.com/picparty/core/internal/config"
	http_game "github.com/picparty/core/internal/delivery/http/game"
	http_init "github.com/picparty/core/internal/delivery/http/init"
	http_room "github.com/picparty/core/internal/delivery/http/room"
	ws_room "github.com/picparty/core/internal/delivery/ws/room"
	infra_memory_room "github.com/picparty/core/internal/infra/memory"
	infra_pg_init "github.com/picparty/core/internal/infra/postgres/init"
	infra_postgres_room "github.com/picparty/core/internal/infra/postgres/room"
	infra_redis_init "github.com/picparty/core/internal/infra/redis/init"
	infra_redis_room "github.com/picparty/core/internal/infra/redis/room"
	infra_s3 "github.com/picparty/core/internal/infra/s3"
	"github.com/picparty/core/internal/infra/s3mock"
	"github.com/picparty/core/internal/store"
	usecase_membership "github.com/picparty/core/internal/usecase/membership"
	usecase_round "github.com/picparty/core/internal/usecase/round"
	usecase_score "github.com/picparty/core/internal/usecase/score"
	usecase_session "github.com/picparty/core/internal/usecase/session"
)

func Go(cfg *config.Config) {
	roomStore := buildStore(cfg)

	var assets usecase_round.AssetResolver
	if os.Getenv("AWS_ACCESS_KEY_ID") == "" && os.Getenv("S3_CLIENT_TYPE") == "" {
		assets = s3mock.New()
	} else {
		s3conn := infra_s3.MustEstablishConn()
		promptStore, err := infra_s3.New(cfg.Assets.Bucket, s3conn, cfg.Assets.Prefix, cfg.Assets.PresignTTL)
		if err != nil {
			panic(err)
		}
		assets = promptStore
	}

	membershipUC := usecase_membership.New(roomStore, cfg.Game.PromptPoolSize)
	roundUC := usecase_round.New(roomStore, assets)
	scoreUC := usecase_score.New(roomStore)
	facade := usecase_session.New(membershipUC, roundUC, scoreUC)

	hub := ws_room.NewHub(facade)
	go hub.Run()

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_room.New(facade, hub))
	controllerPool.Add(http_game.New(facade, hub))
	controllerPool.Add(ws_room.NewController(hub))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}

func buildStore(cfg *config.Config) store.Store {
	switch cfg.Game.StoreDriver {
	case "postgres":
		return infra_postgres_room.New(infra_pg_init.MustEstablishConn(cfg.Postgres))
	case "memory":
		log.Println("[app] using in-memory room store; state is lost on restart")
		return infra_memory_room.New()
	default:
		return infra_redis_room.New(infra_redis_init.MustEstablishConn(cfg.Redis))
	}
}
