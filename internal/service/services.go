package service

import (
	"github.com/MKhiriev/f4f-study-portal/internal/config"
	"github.com/MKhiriev/f4f-study-portal/internal/logger"
	"github.com/MKhiriev/f4f-study-portal/internal/store"
	"github.com/MKhiriev/f4f-study-portal/internal/utils"
	"github.com/MKhiriev/f4f-study-portal/internal/validators"
	"github.com/MKhiriev/f4f-study-portal/models"
)

type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService
	HealthService  HealthService

	FormService     FormService
	FieldService    FieldService
	EnumService     EnumService
	FoodEnumService FoodEnumService
	FoodItemService FoodItemService
	StudyService    StudyService

	FoodImageService   FoodImageService
	IdentifierService  IdentifierService
	SchemaToolsService SchemaToolsService
	ExportService      ExportService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewRequestValidator()
	sanitizer := NewSanitizer()
	snapshots := NewSnapshotLoader(storages)
	ids := utils.NewUUIDGenerator()

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, validator, cfg, logger),
		AppInfoService: appInfo,
		HealthService:  NewHealthService(storages.DB, logger),

		FormService: NewDocumentValidationService[models.InputForm](validator, sanitizer.Form).
			Wrap(newDocumentService(storages.FormRepository, snapshots, ids, formRules, logger)),
		FieldService: NewDocumentValidationService[models.InputField](validator, sanitizer.Field).
			Wrap(newDocumentService(storages.FieldRepository, snapshots, ids, fieldRules, logger)),
		EnumService: NewDocumentValidationService[models.InputEnum](validator, sanitizer.Enum).
			Wrap(newDocumentService(storages.EnumRepository, snapshots, ids, enumRules, logger)),
		FoodEnumService: NewDocumentValidationService[models.FoodEnum](validator, sanitizer.FoodEnum).
			Wrap(newDocumentService(storages.FoodEnumRepository, snapshots, ids, foodEnumRules, logger)),
		FoodItemService: NewDocumentValidationService[models.FoodEnumItem](validator, sanitizer.FoodItem).
			Wrap(newDocumentService(storages.FoodItemRepository, snapshots, ids, foodItemRules, logger)),
		StudyService: NewDocumentValidationService[models.Study](validator, sanitizer.Study).
			Wrap(newDocumentService(storages.StudyRepository, snapshots, ids, studyRules, logger)),

		FoodImageService:   NewFoodImageService(storages.FoodImageRepository, storages.ImageStorage, snapshots, ids, validator, sanitizer, logger),
		IdentifierService:  NewIdentifierService(storages, logger),
		SchemaToolsService: NewSchemaToolsService(storages, snapshots, validator, logger),
		ExportService:      NewExportService(snapshots, cfg.App, logger),
	}, nil
}
