package repair

import (
	"context"
	"sync"

	"github.com/heartmarshall/fieldforms-backend/internal/adapter/airtable"
	"github.com/heartmarshall/fieldforms-backend/internal/domain"
	"github.com/heartmarshall/fieldforms-backend/internal/service/attach"
)

var (
	_ recordStore = &recordStoreMock{}
	_ attacher    = &attacherMock{}
)

type recordStoreMock struct {
	CreateFunc  func(ctx context.Context, table string, fields domain.Fields) (string, error)
	FindOneFunc func(ctx context.Context, table string, filter string) (domain.Record, error)
	ListFunc    func(ctx context.Context, table string, q airtable.Query) ([]domain.Record, error)
	UpdateFunc  func(ctx context.Context, table string, id string, fields domain.Fields) (string, error)

	calls struct {
		Create []struct {
			Ctx    context.Context
			Table  string
			Fields domain.Fields
		}
		FindOne []struct {
			Ctx    context.Context
			Table  string
			Filter string
		}
		List []struct {
			Ctx   context.Context
			Table string
			Q     airtable.Query
		}
		Update []struct {
			Ctx    context.Context
			Table  string
			ID     string
			Fields domain.Fields
		}
	}
	lockCreate  sync.RWMutex
	lockFindOne sync.RWMutex
	lockList    sync.RWMutex
	lockUpdate  sync.RWMutex
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

func (mock *recordStoreMock) FindOne(ctx context.Context, table string, filter string) (domain.Record, error) {
	if mock.FindOneFunc == nil {
		panic("recordStoreMock.FindOneFunc: method is nil but recordStore.FindOne was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Table  string
		Filter string
	}{Ctx: ctx, Table: table, Filter: filter}
	mock.lockFindOne.Lock()
	mock.calls.FindOne = append(mock.calls.FindOne, callInfo)
	mock.lockFindOne.Unlock()
	return mock.FindOneFunc(ctx, table, filter)
}

func (mock *recordStoreMock) FindOneCalls() []struct {
	Ctx    context.Context
	Table  string
	Filter string
} {
	mock.lockFindOne.RLock()
	calls := mock.calls.FindOne
	mock.lockFindOne.RUnlock()
	return calls
}

func (mock *recordStoreMock) List(ctx context.Context, table string, q airtable.Query) ([]domain.Record, error) {
	if mock.ListFunc == nil {
		panic("recordStoreMock.ListFunc: method is nil but recordStore.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Table string
		Q     airtable.Query
	}{Ctx: ctx, Table: table, Q: q}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, table, q)
}

func (mock *recordStoreMock) ListCalls() []struct {
	Ctx   context.Context
	Table string
	Q     airtable.Query
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
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
