package router

import (
	"starblog/internal/domain"
	"starblog/internal/middleware"
	"starblog/internal/modules/catalog"
	"starblog/internal/modules/favorite"
	"starblog/internal/modules/user"
	"starblog/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type Options struct {
	DB          *gorm.DB
	Logger      zerolog.Logger
	CORSOrigins []string
}

// New wires repositories, services and handlers onto a fresh gin engine.
func New(opts Options) *gin.Engine {
	r := gin.New()
	r.RedirectTrailingSlash = true

	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(opts.Logger),
		middleware.ErrorHandler(),
		middleware.CORS(opts.CORSOrigins),
	)

	userRepo := repository.NewUserRepository(opts.DB)
	peopleRepo := repository.NewPeopleRepository(opts.DB)
	planetRepo := repository.NewPlanetRepository(opts.DB)
	vehicleRepo := repository.NewVehicleRepository(opts.DB)
	favoriteRepo := repository.NewFavoriteRepository(opts.DB)

	userHandler := user.NewHandler(user.NewService(userRepo))

	peopleHandler := catalog.NewHandler[domain.People, catalog.CreatePeopleRequest](
		catalog.NewService[domain.People](peopleRepo), domain.KindPeople)
	planetHandler := catalog.NewHandler[domain.Planet, catalog.CreatePlanetRequest](
		catalog.NewService[domain.Planet](planetRepo), domain.KindPlanet)
	vehicleHandler := catalog.NewHandler[domain.Vehicle, catalog.CreateVehicleRequest](
		catalog.NewService[domain.Vehicle](vehicleRepo), domain.KindVehicle)

	favoriteService := favorite.NewService(favoriteRepo, userRepo, map[domain.FavoriteKind]favorite.Checker{
		domain.KindPeople:  peopleRepo,
		domain.KindPlanet:  planetRepo,
		domain.KindVehicle: vehicleRepo,
	})
	favoriteHandler := favorite.NewHandler(favoriteService)

	api := r.Group("")
	{
		userHandler.RegisterRoutes(api)
		peopleHandler.RegisterRoutes(api)
		planetHandler.RegisterRoutes(api)
		vehicleHandler.RegisterRoutes(api)
		favoriteHandler.RegisterRoutes(api)
	}

	registerSystemRoutes(r, opts.DB)

	return r
}
