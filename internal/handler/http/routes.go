package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/f4f-study-portal/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/login", h.login)
		r.Get("/version", h.getServerVersion)
		r.Get("/health", h.health)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth, requireRole(models.RoleAdministrator))

		r.Route("/forms", func(r chi.Router) {
			r.Get("/", listDocuments(h.services.FormService))
			r.Get("/form/{id}", getDocument(h.services.FormService))
			r.Put("/form", saveDocument(h.services.FormService))
			r.Delete("/form/{id}", deleteDocument(h.services.FormService))

			r.Get("/fields", listDocuments(h.services.FieldService))
			r.Get("/field/{id}", getDocument(h.services.FieldService))
			r.Put("/field", saveDocument(h.services.FieldService))
			r.Delete("/field/{id}", deleteDocument(h.services.FieldService))
			r.Post("/field/default", h.previewDefault)

			r.Get("/enums", listDocuments(h.services.EnumService))
			r.Get("/enum/{id}", getDocument(h.services.EnumService))
			r.Put("/enum", saveDocument(h.services.EnumService))
			r.Delete("/enum/{id}", deleteDocument(h.services.EnumService))

			r.Get("/check_identifier/{identifier}", h.checkIdentifier(models.NamespaceForm))
			r.Get("/field/check_identifier/{identifier}", h.checkIdentifier(models.NamespaceField))
			r.Get("/enum/check_identifier/{identifier}", h.checkIdentifier(models.NamespaceEnum))

			r.Post("/validate/form", validateDocument(h.services.FormService))
			r.Post("/validate/field", validateDocument(h.services.FieldService))
			r.Post("/validate/enum", validateDocument(h.services.EnumService))
		})

		r.Route("/schema", func(r chi.Router) {
			r.Get("/foodimages", h.listFoodImages)
			r.Post("/foodimage", h.uploadFoodImage)
			r.Put("/foodimage", h.updateFoodImage)
			r.Get("/foodimage/{id}", h.getFoodImage)
			r.Get("/foodimage/by_filename/{name}", h.downloadFoodImage)
			r.Delete("/foodimage/{id}", h.deleteFoodImage)

			r.Get("/studies", listDocuments(h.services.StudyService))
			r.Get("/study/{id}", getDocument(h.services.StudyService))
			r.Put("/study", saveDocument(h.services.StudyService))
			r.Delete("/study/{id}", deleteDocument(h.services.StudyService))

			r.Get("/foodenums", listDocuments(h.services.FoodEnumService))
			r.Get("/foodenum/graph", h.foodGraph)
			r.Post("/foodenum/evaluate", h.evaluateTransition)
			r.Get("/foodenum/{id}", getDocument(h.services.FoodEnumService))
			r.Put("/foodenum", saveDocument(h.services.FoodEnumService))
			r.Delete("/foodenum/{id}", deleteDocument(h.services.FoodEnumService))
			r.Get("/foodenum/check_identifier/{identifier}", h.checkIdentifier(models.NamespaceFoodEnum))

			r.Get("/foodenumitems", listDocuments(h.services.FoodItemService))
			r.Get("/foodenumitem/{id}", getDocument(h.services.FoodItemService))
			r.Put("/foodenumitem", saveDocument(h.services.FoodItemService))
			r.Delete("/foodenumitem/{id}", deleteDocument(h.services.FoodItemService))
			r.Get("/foodenumitem/check_identifier/{identifier}", h.checkIdentifier(models.NamespaceFoodItem))

			r.Post("/validate/study", validateDocument(h.services.StudyService))
			r.Post("/validate/foodenum", validateDocument(h.services.FoodEnumService))
			r.Post("/validate/foodenumitem", validateDocument(h.services.FoodItemService))

			r.Get("/export", h.export)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
