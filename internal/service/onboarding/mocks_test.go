package onboarding

import (
	"context"
	"sync"

	"github.com/heartmarshall/fieldforms-backend/internal/domain"
	"github.com/heartmarshall/fieldforms-backend/internal/service/attach"
)

var (
	_ recordStore = &recordStoreMock{}
	_ attacher    = &attacherMock{}
)

type recordStoreMock struct {
	CreateFunc func(ctx context.Context, table string, fields domain.Fields) (string, error)

	calls struct {
		Create []struct {
			Ctx    context.Context
			Table  string
			Fields domain.Fields
		}
	}
	lockCreate sync.RWMutex
}

func (mock *recordStoreMock) Create(ctx context.Context, table string, fields domain.Fields) (string, error) {
	if mock.CreateFunc == nil {
		panic("recordStoreMock.CreateFunc: method is nil but recordStore.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Table  string
		Fields domain.Fields
	}{Ctx: ctx, Table: table, Fields: fields}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, table, fields)
}

func (mock *recordStoreMock) CreateCalls() []struct {
	Ctx    context.Context
	Table  string
	Fields domain.Fields
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

type attacherMock struct {
	ApplyFunc func(ctx context.Context, table string, recordID string, files map[string][]domain.Attachment, opts attach.Options) (attach.Report, error)

	calls struct {
		Apply []struct {
			Ctx      context.Context
			Table    string
			RecordID string
			Files    map[string][]domain.Attachment
			Opts     attach.Options
		}
	}
	lockApply sync.RWMutex
}

func (mock *attacherMock) Apply(ctx context.Context, table string, recordID string, files map[string][]domain.Attachment, opts attach.Options) (attach.Report, error) {
	if mock.ApplyFunc == nil {
		panic("attacherMock.ApplyFunc: method is nil but attacher.Apply was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Table    string
		RecordID string
		Files    map[string][]domain.Attachment
		Opts     attach.Options
	}{Ctx: ctx, Table: table, RecordID: recordID, Files: files, Opts: opts}
	mock.lockApply.Lock()
	mock.calls.Apply = append(mock.calls.Apply, callInfo)
	mock.lockApply.Unlock()
	return mock.ApplyFunc(ctx, table, recordID, files, opts)
}

func (mock *attacherMock) ApplyCalls() []struct {
	Ctx      context.Context
	Table    string
	RecordID string
	Files    map[string][]domain.Attachment
	Opts     attach.Options
} {
	mock.lockApply.RLock()
	calls := mock.calls.Apply
	mock.lockApply.RUnlock()
	return calls
}
