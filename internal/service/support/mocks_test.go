package support

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
	FindOneFunc func(ctx context.Context, table string, filter string) (domain.Record, error)
	GetFunc     func(ctx context.Context, table string, id string) (domain.Record, error)
	UpdateFunc  func(ctx context.Context, table string, id string, fields domain.Fields) (string, error)

	calls struct {
		FindOne []struct {
			Ctx    context.Context
			Table  string
			Filter string
		}
		Get []struct {
			Ctx   context.Context
			Table string
			ID    string
		}
		Update []struct {
			Ctx    context.Context
			Table  string
			ID     string
			Fields domain.Fields
		}
	}
	lockFindOne sync.RWMutex
	lockGet     sync.RWMutex
	lockUpdate  sync.RWMutex
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

func (mock *recordStoreMock) Get(ctx context.Context, table string, id string) (domain.Record, error) {
	if mock.GetFunc == nil {
		panic("recordStoreMock.GetFunc: method is nil but recordStore.Get was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Table string
		ID    string
	}{Ctx: ctx, Table: table, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, table, id)
}

func (mock *recordStoreMock) GetCalls() []struct {
	Ctx   context.Context
	Table string
	ID    string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
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
