package cmd

import (
	"time"

	"resumeflow/internal/adapters/out/intake"
	"resumeflow/internal/adapters/out/objectstore"
	"resumeflow/internal/adapters/out/postgres"
	"resumeflow/internal/core/application/usecases/commands"
	"resumeflow/internal/core/application/usecases/queries"
	"resumeflow/internal/core/ports"

	"gorm.io/gorm"
)

const outboundTimeout = 30 * time.Second

// CompositionRoot wires infrastructure adapters into the application use
// cases. All handler constructors hang off this type so main stays free of
// wiring detail.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	blobStore  ports.BlobStore
	intakeGW   ports.IntakeGateway
}

// NewCompositionRoot builds the adapter graph from the loaded configuration.
func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	blobStore, err := objectstore.NewClient(
		config.ObjectStoreURL,
		config.ObjectStoreAuthToken,
		outboundTimeout,
	)
	if err != nil {
		return CompositionRoot{}, err
	}

	intakeClient, err := intake.NewClient(config.IntakeURL, outboundTimeout)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		blobStore:  blobStore,
		intakeGW:   intakeClient,
	}, nil
}

func (c *CompositionRoot) createAssetResolver() commands.AssetResolver {
	uow := c.uowFactory.Create()
	return commands.NewAssetResolver(
		uow.ResumeRepository(),
		uow.ContactProfileRepository(),
		uow.FeedSourceRepository(),
		c.blobStore,
	)
}

func (c *CompositionRoot) CreateDispatchDueResumesCommandHandler() commands.DispatchDueResumesCommandHandler {
	return commands.NewDispatchDueResumesCommandHandler(
		c.uowFactory.Create().AutomationSettingRepository(),
		c.createAssetResolver(),
		c.intakeGW,
		c.config.DispatchWorkers,
	)
}

func (c *CompositionRoot) CreateUploadResumeCommandHandler() commands.UploadResumeCommandHandler {
	var f commands.ResumeUoWFactory = FuncResumeUoWFactory(func() commands.ResumeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUploadResumeCommandHandler(f, c.blobStore)
}

func (c *CompositionRoot) CreateDeleteResumeCommandHandler() commands.DeleteResumeCommandHandler {
	var f commands.ResumeUoWFactory = FuncResumeUoWFactory(func() commands.ResumeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteResumeCommandHandler(f, c.blobStore)
}

func (c *CompositionRoot) CreateSaveAutomationSettingCommandHandler() commands.SaveAutomationSettingCommandHandler {
	var f commands.SettingUoWFactory = FuncSettingUoWFactory(func() commands.SettingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSaveAutomationSettingCommandHandler(f)
}

func (c *CompositionRoot) CreateSaveContactProfileCommandHandler() commands.SaveContactProfileCommandHandler {
	var f commands.ContactUoWFactory = FuncContactUoWFactory(func() commands.ContactUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSaveContactProfileCommandHandler(f)
}

func (c *CompositionRoot) CreateAddFeedSourceCommandHandler() commands.AddFeedSourceCommandHandler {
	var f commands.FeedUoWFactory = FuncFeedUoWFactory(func() commands.FeedUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddFeedSourceCommandHandler(f)
}

func (c *CompositionRoot) CreateSendResumeCommandHandler() commands.SendResumeCommandHandler {
	return commands.NewSendResumeCommandHandler(
		c.uowFactory.Create().AutomationSettingRepository(),
		c.createAssetResolver(),
		c.intakeGW,
	)
}

func (c *CompositionRoot) CreateGetResumesQueryHandler() queries.GetResumesQueryHandler {
	return queries.NewGetResumesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFeedSourcesQueryHandler() queries.GetFeedSourcesQueryHandler {
	return queries.NewGetFeedSourcesQueryHandler(c.gormDB)
}

type FuncResumeUoWFactory func() commands.ResumeUoW

func (f FuncResumeUoWFactory) Create() commands.ResumeUoW {
	return f()
}

type FuncSettingUoWFactory func() commands.SettingUoW

func (f FuncSettingUoWFactory) Create() commands.SettingUoW {
	return f()
}

type FuncContactUoWFactory func() commands.ContactUoW

func (f FuncContactUoWFactory) Create() commands.ContactUoW {
	return f()
}

type FuncFeedUoWFactory func() commands.FeedUoW

func (f FuncFeedUoWFactory) Create() commands.FeedUoW {
	return f()
}
