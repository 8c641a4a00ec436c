package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/econopapi/terraza-zocalo-hosts/docs"
	v1 "github.com/econopapi/terraza-zocalo-hosts/internal/api/handler/v1"
	"github.com/econopapi/terraza-zocalo-hosts/internal/api/middleware"
	"github.com/econopapi/terraza-zocalo-hosts/internal/config"
	"github.com/econopapi/terraza-zocalo-hosts/internal/repository"
	"github.com/econopapi/terraza-zocalo-hosts/internal/repository/dao"
	"github.com/econopapi/terraza-zocalo-hosts/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	accessHandler := s.initAccessHandler(db)
	seatingHandler := s.initSeatingHandler(db)
	reportHandler := s.initReportHandler(db)
	staffHandler := s.initStaffHandler(db)
	s.MountHandlers(accessHandler, seatingHandler, reportHandler, staffHandler)

	return s
}

func (s *Server) initAccessHandler(db *gorm.DB) *v1.AccessHandler {
	repo := newStaffRepository(db)
	svc := service.NewAccessService(repo)
	handler := v1.NewAccessHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initSeatingHandler(db *gorm.DB) *v1.SeatingHandler {
	staffRepo := newStaffRepository(db)
	seatingRepo := repository.NewSeatingRepository(dao.NewSeatingDAO(db))
	svc := service.NewSeatingService(seatingRepo, staffRepo)
	access := service.NewAccessService(staffRepo)
	handler := v1.NewSeatingHandler(svc, access)

	return handler
}

func (s *Server) initReportHandler(db *gorm.DB) *v1.ReportHandler {
	staffRepo := newStaffRepository(db)
	seatingRepo := repository.NewSeatingRepository(dao.NewSeatingDAO(db))
	svc := service.NewReportService(seatingRepo, staffRepo)
	handler := v1.NewReportHandler(svc)

	return handler
}

func (s *Server) initStaffHandler(db *gorm.DB) *v1.StaffHandler {
	staffRepo := newStaffRepository(db)
	seatingRepo := repository.NewSeatingRepository(dao.NewSeatingDAO(db))
	svc := service.NewStaffService(staffRepo, seatingRepo)
	handler := v1.NewStaffHandler(svc)

	return handler
}

func newStaffRepository(db *gorm.DB) *repository.StaffRepository {
	return repository.NewStaffRepository(dao.NewTeamDAO(db), dao.NewHostDAO(db), dao.NewWaiterDAO(db))
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(accessHandler *v1.AccessHandler, seatingHandler *v1.SeatingHandler, reportHandler *v1.ReportHandler, staffHandler *v1.StaffHandler) {
	const basePath = "/api/v1"

	authenticator := middleware.NewAuthenticator(s.Config.API.JWTSigningKey)

	access := s.Router.Group(basePath)
	{
		access.POST("/access", accessHandler.HandleAccess)
	}

	floor := s.Router.Group(basePath, authenticator.Identity())
	{
		floor.GET("/teams/:teamID", staffHandler.HandleGetTeamBoard)
		floor.POST("/teams/:teamID/events", seatingHandler.HandleRecordSeating)
		floor.POST("/events/:eventID/confirm", seatingHandler.HandleConfirmSeating)

		floor.GET("/reports/teams/:teamID", reportHandler.HandleTeamReport)
		floor.GET("/reports/teams/:teamID/hosts/:hostID", reportHandler.HandleHostReport)
		floor.GET("/reports/waiters/:waiterID", reportHandler.HandleWaiterReport)
	}

	admin := s.Router.Group(basePath+"/admin", middleware.AdminAuth(s.Config.API.AdminPassword))
	{
		admin.POST("/teams", staffHandler.HandleCreateTeam)
		admin.POST("/hosts", staffHandler.HandleCreateHost)
		admin.POST("/waiters", staffHandler.HandleCreateWaiter)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Terraza Zócalo hosteos API"
	docs.SwaggerInfo.Description = "Seating-event logging and daily reporting for restaurant floor teams."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
