package commands_test

import (
	"context"

	"resumeflow/internal/core/application/usecases/commands"
	"resumeflow/internal/core/domain/model/automation"
	"resumeflow/internal/core/domain/model/contact"
	"resumeflow/internal/core/domain/model/dispatch"
	"resumeflow/internal/core/domain/model/feed"
	"resumeflow/internal/core/domain/model/kernel"
	"resumeflow/internal/core/domain/model/resume"
	"resumeflow/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type SettingRepoMock struct{ mock.Mock }

func (m *SettingRepoMock) Upsert(ctx context.Context, s *automation.Setting) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *SettingRepoMock) Get(ctx context.Context, userID kernel.UUID) (*automation.Setting, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*automation.Setting), args.Error(1)
}

func (m *SettingRepoMock) GetAllEnabledAt(
	ctx context.Context,
	at kernel.ScheduleTime,
) ([]*automation.Setting, error) {
	args := m.Called(ctx, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*automation.Setting), args.Error(1)
}

type ResumeRepoMock struct{ mock.Mock }

func (m *ResumeRepoMock) Add(ctx context.Context, r *resume.Resume) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *ResumeRepoMock) GetForOwner(
	ctx context.Context,
	id, ownerUserID kernel.UUID,
) (*resume.Resume, error) {
	args := m.Called(ctx, id, ownerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resume.Resume), args.Error(1)
}

func (m *ResumeRepoMock) GetAllForOwner(
	ctx context.Context,
	ownerUserID kernel.UUID,
) ([]*resume.Resume, error) {
	args := m.Called(ctx, ownerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*resume.Resume), args.Error(1)
}

func (m *ResumeRepoMock) Delete(ctx context.Context, id, ownerUserID kernel.UUID) error {
	args := m.Called(ctx, id, ownerUserID)
	return args.Error(0)
}

type ContactRepoMock struct{ mock.Mock }

func (m *ContactRepoMock) Upsert(ctx context.Context, p *contact.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ContactRepoMock) Get(ctx context.Context, userID kernel.UUID) (*contact.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contact.Profile), args.Error(1)
}

type FeedRepoMock struct{ mock.Mock }

func (m *FeedRepoMock) Add(ctx context.Context, s *feed.Source) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *FeedRepoMock) GetAllForUser(ctx context.Context, userID kernel.UUID) ([]*feed.Source, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*feed.Source), args.Error(1)
}

type BlobStoreMock struct{ mock.Mock }

func (m *BlobStoreMock) Download(ctx context.Context, path string) ([]byte, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *BlobStoreMock) Upload(ctx context.Context, path string, content []byte, contentType string) error {
	args := m.Called(ctx, path, content, contentType)
	return args.Error(0)
}

func (m *BlobStoreMock) Remove(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

type IntakeGatewayMock struct{ mock.Mock }

func (m *IntakeGatewayMock) Deliver(ctx context.Context, payload dispatch.Payload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

type ResumeUoWMock struct{ mock.Mock }

func (m *ResumeUoWMock) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *ResumeUoWMock) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *ResumeUoWMock) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *ResumeUoWMock) ResumeRepository() ports.ResumeRepository {
	args := m.Called()
	return args.Get(0).(ports.ResumeRepository)
}

type ResumeUoWFactoryMock struct{ mock.Mock }

func (m *ResumeUoWFactoryMock) Create() commands.ResumeUoW {
	args := m.Called()
	return args.Get(0).(commands.ResumeUoW)
}

type SettingUoWMock struct{ mock.Mock }

func (m *SettingUoWMock) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *SettingUoWMock) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *SettingUoWMock) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *SettingUoWMock) AutomationSettingRepository() ports.AutomationSettingRepository {
	args := m.Called()
	return args.Get(0).(ports.AutomationSettingRepository)
}

func (m *SettingUoWMock) ResumeRepository() ports.ResumeRepository {
	args := m.Called()
	return args.Get(0).(ports.ResumeRepository)
}

type SettingUoWFactoryMock struct{ mock.Mock }

func (m *SettingUoWFactoryMock) Create() commands.SettingUoW {
	args := m.Called()
	return args.Get(0).(commands.SettingUoW)
}

type ContactUoWMock struct{ mock.Mock }

func (m *ContactUoWMock) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *ContactUoWMock) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *ContactUoWMock) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *ContactUoWMock) ContactProfileRepository() ports.ContactProfileRepository {
	args := m.Called()
	return args.Get(0).(ports.ContactProfileRepository)
}

type ContactUoWFactoryMock struct{ mock.Mock }

func (m *ContactUoWFactoryMock) Create() commands.ContactUoW {
	args := m.Called()
	return args.Get(0).(commands.ContactUoW)
}

type FeedUoWMock struct{ mock.Mock }

func (m *FeedUoWMock) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *FeedUoWMock) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *FeedUoWMock) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *FeedUoWMock) FeedSourceRepository() ports.FeedSourceRepository {
	args := m.Called()
	return args.Get(0).(ports.FeedSourceRepository)
}

type FeedUoWFactoryMock struct{ mock.Mock }

func (m *FeedUoWFactoryMock) Create() commands.FeedUoW {
	args := m.Called()
	return args.Get(0).(commands.FeedUoW)
}
