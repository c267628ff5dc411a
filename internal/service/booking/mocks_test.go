package booking

import (
	"context"
	"sync"

	"github.com/heartmarshall/fieldforms-backend/internal/domain"
)

var _ recordStore = &recordStoreMock{}

type recordStoreMock struct {
	CreateFunc  func(ctx context.Context, table string, fields domain.Fields) (string, error)
	FindOneFunc func(ctx context.Context, table string, filter string) (domain.Record, error)

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
	}
	lockCreate  sync.RWMutex
	lockFindOne sync.RWMutex
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
