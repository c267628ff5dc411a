package attach

import (
	"context"
	"sync"

	"github.com/heartmarshall/fieldforms-backend/internal/domain"
)

var _ recordStore = &recordStoreMock{}

type recordStoreMock struct {
	UpdateFunc           func(ctx context.Context, table string, id string, fields domain.Fields) (string, error)
	UploadAttachmentFunc func(ctx context.Context, recordID string, field string, att domain.Attachment) error

	calls struct {
		Update []struct {
			Ctx    context.Context
			Table  string
			ID     string
			Fields domain.Fields
		}
		UploadAttachment []struct {
			Ctx      context.Context
			RecordID string
			Field    string
			Att      domain.Attachment
		}
	}
	lockUpdate           sync.RWMutex
	lockUploadAttachment sync.RWMutex
}

func (mock *recordStoreMock) Update(ctx context.Context, table string, id string, fields domain.Fields) (string, error) {
	if mock.UpdateFunc == nil {
		panic("recordStoreMock.UpdateFunc: method is nil but recordStore.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Table  string
		ID     string
		Fields domain.Fields
	}{Ctx: ctx, Table: table, ID: id, Fields: fields}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, table, id, fields)
}

func (mock *recordStoreMock) UpdateCalls() []struct {
	Ctx    context.Context
	Table  string
	ID     string
	Fields domain.Fields
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *recordStoreMock) UploadAttachment(ctx context.Context, recordID string, field string, att domain.Attachment) error {
	if mock.UploadAttachmentFunc == nil {
		panic("recordStoreMock.UploadAttachmentFunc: method is nil but recordStore.UploadAttachment was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RecordID string
		Field    string
		Att      domain.Attachment
	}{Ctx: ctx, RecordID: recordID, Field: field, Att: att}
	mock.lockUploadAttachment.Lock()
	mock.calls.UploadAttachment = append(mock.calls.UploadAttachment, callInfo)
	mock.lockUploadAttachment.Unlock()
	return mock.UploadAttachmentFunc(ctx, recordID, field, att)
}

func (mock *recordStoreMock) UploadAttachmentCalls() []struct {
	Ctx      context.Context
	RecordID string
	Field    string
	Att      domain.Attachment
} {
	mock.lockUploadAttachment.RLock()
	calls := mock.calls.UploadAttachment
	mock.lockUploadAttachment.RUnlock()
	return calls
}
