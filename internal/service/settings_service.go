package service

import (
	"context"

	"github.com/carson-networks/money-tracker/internal/ledger"
	"github.com/carson-networks/money-tracker/internal/operator/actions"
)

// SettingsService reads and updates user preferences.
type SettingsService struct {
	reader snapshotter
	writer processor
}

func NewSettingsService(reader snapshotter, writer processor) *SettingsService {
	return &SettingsService{reader: reader, writer: writer}
}

func (s *SettingsService) GetSettings(_ context.Context) ledger.Settings {
	return s.reader.Snapshot().Settings
}

// UpdateSettings shallow-merges patch and returns the resulting settings.
func (s *SettingsService) UpdateSettings(ctx context.Context, patch ledger.SettingsPatch) (ledger.Settings, error) {
	action := &actions.UpdateSettings{Patch: patch}
	if err := s.writer.Process(ctx, action); err != nil {
		return ledger.Settings{}, err
	}
	return action.Result, nil
}

func (s *SettingsService) AddAccountType(ctx context.Context, label string) ([]string, error) {
	return s.accountTypes(ctx, &actions.ManageAccountTypes{Op: actions.LabelAdd, Label: label})
}

// RemoveAccountType fails with ledger.ErrAccountTypeInUse while any account has the type.
func (s *SettingsService) RemoveAccountType(ctx context.Context, label string) ([]string, error) {
	return s.accountTypes(ctx, &actions.ManageAccountTypes{Op: actions.LabelRemove, Label: label})
}

func (s *SettingsService) RenameAccountType(ctx context.Context, from, to string) ([]string, error) {
	return s.accountTypes(ctx, &actions.ManageAccountTypes{Op: actions.LabelRename, Label: from, To: to})
}

func (s *SettingsService) accountTypes(ctx context.Context, action *actions.ManageAccountTypes) ([]string, error) {
	if err := s.writer.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Result, nil
}

func (s *SettingsService) AddCategory(ctx context.Context, kind ledger.TransactionType, label string) ([]string, error) {
	return s.categories(ctx, &actions.ManageCategories{Op: actions.LabelAdd, Kind: kind, Label: label})
}

func (s *SettingsService) RemoveCategory(ctx context.Context, kind ledger.TransactionType, label string) ([]string, error) {
	return s.categories(ctx, &actions.ManageCategories{Op: actions.LabelRemove, Kind: kind, Label: label})
}

func (s *SettingsService) categories(ctx context.Context, action *actions.ManageCategories) ([]string, error) {
	if err := s.writer.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Result, nil
}
