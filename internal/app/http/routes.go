package routes

import (
	"time"

	"sda-backend/config"
	aboutapi "sda-backend/internal/api/about"
	approachesapi "sda-backend/internal/api/approaches"
	authapi "sda-backend/internal/api/auth"
	contactapi "sda-backend/internal/api/contact"
	newsapi "sda-backend/internal/api/news"
	partnersapi "sda-backend/internal/api/partners"
	projectsapi "sda-backend/internal/api/projects"
	sectorsapi "sda-backend/internal/api/sectors"
	servicesapi "sda-backend/internal/api/services"
	teamapi "sda-backend/internal/api/team"
	uploadsapi "sda-backend/internal/api/uploads"
	workprocessapi "sda-backend/internal/api/workprocess"
	"sda-backend/internal/app/http/middleware"
	"sda-backend/internal/cache"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, store cache.Cacher) {
	cacheTTL := time.Duration(config.CACHE_TTL_SECONDS) * time.Second
	cached := middleware.CacheResponse(store, cacheTTL)
	cachedShort := middleware.CacheResponse(store, time.Minute)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "SDA Consulting API"})
	})

	r.Static("/uploads", config.UPLOAD_DIR)
	r.Static("/resources", config.RESOURCES_DIR)

	api := r.Group("/api/v1")

	// Auth
	api.POST("/auth/login", authapi.Login)
	api.GET("/auth/me", middleware.AuthMiddleware(), authapi.Me)

	// Services
	api.GET("/services", cached, servicesapi.ListServices)
	api.POST("/services", servicesapi.CreateService)
	api.POST("/services/json", servicesapi.CreateServiceJSON)
	api.GET("/services/slug/:slug", cached, servicesapi.GetServiceBySlug)
	api.GET("/services/:id", cached, servicesapi.GetService)
	api.PATCH("/services/:id", servicesapi.UpdateService)
	api.POST("/services/:id/icon", servicesapi.UploadServiceIcon)
	api.DELETE("/services/:id", servicesapi.DeleteService)

	api.GET("/service-benefits", cached, servicesapi.ListServiceBenefits)
	api.POST("/service-benefits", servicesapi.CreateServiceBenefit)
	api.GET("/service-benefits/:id", cached, servicesapi.GetServiceBenefit)
	api.PATCH("/service-benefits/:id", servicesapi.UpdateServiceBenefit)
	api.DELETE("/service-benefits/:id", servicesapi.DeleteServiceBenefit)

	// Projects
	api.GET("/projects", cached, projectsapi.ListProjects)
	api.POST("/projects", projectsapi.CreateProject)
	api.POST("/projects/json", projectsapi.CreateProjectJSON)
	api.GET("/projects/slug/:slug", cached, projectsapi.GetProjectBySlug)
	api.GET("/projects/:id", cached, projectsapi.GetProject)
	api.PUT("/projects/:id", projectsapi.UpdateProject)
	api.DELETE("/projects/:id", projectsapi.DeleteProject)
	api.POST("/projects/:id/cover", projectsapi.UploadProjectCover)
	api.GET("/projects/:id/photos", cached, projectsapi.ListProjectPhotos)
	api.POST("/projects/:id/photos", projectsapi.UploadProjectPhoto)
	api.GET("/project-photos/:id", projectsapi.GetProjectPhoto)
	api.PUT("/project-photos/:id", projectsapi.UpdateProjectPhoto)
	api.DELETE("/project-photos/:id", projectsapi.DeleteProjectPhoto)

	// Property sectors
	api.GET("/property-sectors", cached, sectorsapi.ListPropertySectors)
	api.POST("/property-sectors", sectorsapi.CreatePropertySector)
	api.GET("/property-sectors/:id", cached, sectorsapi.GetPropertySector)
	api.PUT("/property-sectors/:id", sectorsapi.UpdatePropertySector)
	api.DELETE("/property-sectors/:id", sectorsapi.DeletePropertySector)
	api.GET("/property-sectors/:id/inns", cached, sectorsapi.ListSectorInns)
	api.POST("/property-sectors/:id/inns", sectorsapi.CreateSectorInn)
	api.GET("/sector-inns/:id", sectorsapi.GetSectorInn)
	api.PUT("/sector-inns/:id", sectorsapi.UpdateSectorInn)
	api.DELETE("/sector-inns/:id", sectorsapi.DeleteSectorInn)

	// News
	api.GET("/news", cached, newsapi.ListNews)
	api.POST("/news", newsapi.CreateNews)
	api.POST("/news/json", newsapi.CreateNewsJSON)
	api.GET("/news/:id", cached, newsapi.GetNews)
	api.PUT("/news/:id", newsapi.UpdateNews)
	api.DELETE("/news/:id", newsapi.DeleteNews)
	api.POST("/news/:id/photo", newsapi.UploadNewsPhoto)
	api.GET("/news/:id/sections", cached, newsapi.ListNewsSections)
	api.POST("/news/:id/sections", newsapi.CreateNewsSection)
	api.GET("/news-sections/:id", newsapi.GetNewsSection)
	api.PUT("/news-sections/:id", newsapi.UpdateNewsSection)
	api.DELETE("/news-sections/:id", newsapi.DeleteNewsSection)

	// Team
	api.GET("/team-members", cached, teamapi.ListTeamMembers)
	api.POST("/team-members", teamapi.CreateTeamMember)
	api.POST("/team-members/json", teamapi.CreateTeamMemberJSON)
	api.GET("/team-members/:id", cached, teamapi.GetTeamMember)
	api.PUT("/team-members/:id", teamapi.UpdateTeamMember)
	api.DELETE("/team-members/:id", teamapi.DeleteTeamMember)
	api.POST("/team-members/:id/photo", teamapi.UploadTeamMemberPhoto)

	api.GET("/team-sections", cached, teamapi.ListTeamSections)
	api.POST("/team-sections", teamapi.CreateTeamSection)
	api.GET("/team-sections/:id", cached, teamapi.GetTeamSection)
	api.PUT("/team-sections/:id", teamapi.UpdateTeamSection)
	api.DELETE("/team-sections/:id", teamapi.DeleteTeamSection)
	api.GET("/team-sections/:id/items", cached, teamapi.ListTeamSectionItems)
	api.POST("/team-sections/:id/items", teamapi.CreateTeamSectionItem)
	api.GET("/team-section-items/:id", teamapi.GetTeamSectionItem)
	api.PUT("/team-section-items/:id", teamapi.UpdateTeamSectionItem)
	api.DELETE("/team-section-items/:id", teamapi.DeleteTeamSectionItem)

	// Partners
	api.GET("/partners", cached, partnersapi.ListPartners)
	api.POST("/partners", partnersapi.CreatePartner)
	api.GET("/partners/:id", cached, partnersapi.GetPartner)
	api.PUT("/partners/:id", partnersapi.UpdatePartner)
	api.DELETE("/partners/:id", partnersapi.DeletePartner)
	api.GET("/partners/:id/logos", cached, partnersapi.ListPartnerLogos)
	api.POST("/partners/:id/logos", partnersapi.UploadPartnerLogo)
	api.GET("/partner-logos/:id", partnersapi.GetPartnerLogo)
	api.PUT("/partner-logos/:id", partnersapi.UpdatePartnerLogo)
	api.DELETE("/partner-logos/:id", partnersapi.DeletePartnerLogo)

	// About
	api.GET("/about", cached, aboutapi.ListAbout)
	api.POST("/about", aboutapi.CreateAbout)
	api.GET("/about/:id", cached, aboutapi.GetAbout)
	api.PUT("/about/:id", aboutapi.UpdateAbout)
	api.DELETE("/about/:id", aboutapi.DeleteAbout)
	api.GET("/about/:id/logos", cached, aboutapi.ListAboutLogos)
	api.POST("/about/:id/logos", aboutapi.UploadAboutLogo)
	api.GET("/about-logos/:id", aboutapi.GetAboutLogo)
	api.PUT("/about-logos/:id", aboutapi.UpdateAboutLogo)
	api.DELETE("/about-logos/:id", aboutapi.DeleteAboutLogo)

	// Approaches
	api.GET("/approaches", cached, approachesapi.ListApproaches)
	api.POST("/approaches", approachesapi.CreateApproach)
	api.GET("/approaches/:id", cached, approachesapi.GetApproach)
	api.PUT("/approaches/:id", approachesapi.UpdateApproach)
	api.DELETE("/approaches/:id", approachesapi.DeleteApproach)

	// Work processes
	api.GET("/work-processes", cached, workprocessapi.ListWorkProcesses)
	api.POST("/work-processes", workprocessapi.CreateWorkProcess)
	api.POST("/work-processes/json", workprocessapi.CreateWorkProcessJSON)
	api.GET("/work-processes/:id", cached, workprocessapi.GetWorkProcess)
	api.PUT("/work-processes/:id", workprocessapi.UpdateWorkProcess)
	api.DELETE("/work-processes/:id", workprocessapi.DeleteWorkProcess)

	// Contact: the submission form is public and sanitized; the inbox is
	// admin-only.
	api.POST("/contact", middleware.SanitizeAndCleanInputMiddleware(), contactapi.SubmitContactMessage)

	inbox := api.Group("/contact", middleware.AuthMiddleware())
	inbox.GET("", contactapi.ListContactMessages)
	inbox.GET("/unread", cachedShort, contactapi.CountUnreadMessages)
	inbox.GET("/:id", contactapi.GetContactMessage)
	inbox.PUT("/:id", contactapi.UpdateContactMessage)
	inbox.POST("/:id/read", contactapi.MarkContactMessageRead)
	inbox.DELETE("/:id", contactapi.DeleteContactMessage)

	// Generic uploads
	api.POST("/upload", uploadsapi.Upload)
}
