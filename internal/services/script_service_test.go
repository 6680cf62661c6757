package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"sekahub/internal/models/db_models"
	"sekahub/internal/models/request_models"
	"sekahub/internal/repositories"
	"sekahub/pkg/utils"
)

type fakeScriptRepo struct {
	byID       map[string]*db_models.Script
	lastOffset int
	lastLimit  int
}

func newFakeScriptRepo() *fakeScriptRepo {
	return &fakeScriptRepo{byID: map[string]*db_models.Script{}}
}

func (f *fakeScriptRepo) Insert(ctx context.Context, script *db_models.Script) error {
	if script.ID == uuid.Nil {
		script.ID = uuid.New()
	}
	f.byID[script.ID.String()] = script
	return nil
}

func (f *fakeScriptRepo) Update(ctx context.Context, script *db_models.Script) error {
	f.byID[script.ID.String()] = script
	return nil
}

func (f *fakeScriptRepo) Delete(ctx context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeScriptRepo) FindById(ctx context.Context, id string) (*db_models.Script, error) {
	return f.byID[id], nil
}

func (f *fakeScriptRepo) List(ctx context.Context, offset, limit int) ([]db_models.Script, error) {
	f.lastOffset = offset
	f.lastLimit = limit
	var out []db_models.Script
	for _, script := range f.byID {
		out = append(out, *script)
	}
	return out, nil
}

func (f *fakeScriptRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.byID)), nil
}

var _ repositories.ScriptRepository = (*fakeScriptRepo)(nil)

func TestCreateScript_StoresWorkflowFile(t *testing.T) {
	repo := newFakeScriptRepo()
	svc := NewScriptService(repo)

	script, err := svc.CreateScript(context.Background(), request_models.CreateScriptRequest{
		Title:       "Lead enrichment workflow",
		Description: "Enriches new CRM leads via Clearbit.",
		FileURL:     "https://files.example.com/n8n/lead-enrichment.json",
	})

	assert.NoError(t, err)
	stored := repo.byID[script.ID.String()]
	if assert.NotNil(t, stored) {
		assert.Equal(t, "Lead enrichment workflow", stored.Title)
		assert.Equal(t, "https://files.example.com/n8n/lead-enrichment.json", stored.FileURL)
	}
}

func TestUpdateScript_PartialFields(t *testing.T) {
	repo := newFakeScriptRepo()
	svc := NewScriptService(repo)
	script := &db_models.Script{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Title:     "Old title",
		FileURL:   "https://files.example.com/n8n/v1.json",
	}
	repo.byID[script.ID.String()] = script

	newTitle := "New title"
	updated, err := svc.UpdateScript(context.Background(), script.ID.String(), request_models.UpdateScriptRequest{
		Title: &newTitle,
	})

	assert.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, "https://files.example.com/n8n/v1.json", updated.FileURL)
}

func TestDeleteScript_UnknownID(t *testing.T) {
	svc := NewScriptService(newFakeScriptRepo())

	err := svc.DeleteScript(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, utils.ErrRecordNotFound)
}

func TestListScripts_Pagination(t *testing.T) {
	repo := newFakeScriptRepo()
	svc := NewScriptService(repo)

	_, err := svc.ListScripts(context.Background(), 3, 10)
	assert.NoError(t, err)
	assert.Equal(t, 20, repo.lastOffset)
	assert.Equal(t, 10, repo.lastLimit)

	_, err = svc.ListScripts(context.Background(), 0, 10)
	assert.ErrorIs(t, err, utils.ErrInvalidPage)
}

func TestDownloadURL_ResolvesHostedFile(t *testing.T) {
	repo := newFakeScriptRepo()
	svc := NewScriptService(repo)
	script := &db_models.Script{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Title:     "Backup workflow",
		FileURL:   "https://files.example.com/n8n/backup.json",
	}
	repo.byID[script.ID.String()] = script

	url, err := svc.DownloadURL(context.Background(), script.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, "https://files.example.com/n8n/backup.json", url)

	_, err = svc.DownloadURL(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrRecordNotFound)
}
