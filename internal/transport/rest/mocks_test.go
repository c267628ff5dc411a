package rest

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/fieldforms-backend/internal/attachment"
	"github.com/heartmarshall/fieldforms-backend/internal/domain"
	"github.com/heartmarshall/fieldforms-backend/internal/service/booking"
	"github.com/heartmarshall/fieldforms-backend/internal/service/onboarding"
	"github.com/heartmarshall/fieldforms-backend/internal/service/repair"
	"github.com/heartmarshall/fieldforms-backend/internal/service/support"
	"github.com/heartmarshall/fieldforms-backend/internal/wizard"
)

var _ onboardingService = &onboardingServiceMock{}

type onboardingServiceMock struct {
	SubmitFunc func(ctx context.Context, sub wizard.Submission) (onboarding.Result, error)

	calls struct {
		Submit []struct {
			Ctx context.Context
			Sub wizard.Submission
		}
	}
	lockSubmit sync.RWMutex
}

func (mock *onboardingServiceMock) Submit(ctx context.Context, sub wizard.Submission) (onboarding.Result, error) {
	if mock.SubmitFunc == nil {
		panic("onboardingServiceMock.SubmitFunc: method is nil but onboardingService.Submit was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Sub wizard.Submission
	}{Ctx: ctx, Sub: sub}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, sub)
}

func (mock *onboardingServiceMock) SubmitCalls() []struct {
	Ctx context.Context
	Sub wizard.Submission
} {
	mock.lockSubmit.RLock()
	calls := mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}

var _ repairService = &repairServiceMock{}

type repairServiceMock struct {
	CreateFunc             func(ctx context.Context, sub wizard.Submission) (repair.CreateResult, error)
	FindByExpedienteFunc   func(ctx context.Context, expediente string) (repair.Repair, error)
	UpdateByExpedienteFunc func(ctx context.Context, expediente string, sub wizard.Submission) (repair.UpdateResult, error)
	ListFunc               func(ctx context.Context, limit int) ([]repair.Repair, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Sub wizard.Submission
		}
		FindByExpediente []struct {
			Ctx        context.Context
			Expediente string
		}
		UpdateByExpediente []struct {
			Ctx        context.Context
			Expediente string
			Sub        wizard.Submission
		}
		List []struct {
			Ctx   context.Context
			Limit int
		}
	}
	lockCreate             sync.RWMutex
	lockFindByExpediente   sync.RWMutex
	lockUpdateByExpediente sync.RWMutex
	lockList               sync.RWMutex
}

func (mock *repairServiceMock) Create(ctx context.Context, sub wizard.Submission) (repair.CreateResult, error) {
	if mock.CreateFunc == nil {
		panic("repairServiceMock.CreateFunc: method is nil but repairService.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Sub wizard.Submission
	}{Ctx: ctx, Sub: sub}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, sub)
}

func (mock *repairServiceMock) CreateCalls() []struct {
	Ctx context.Context
	Sub wizard.Submission
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *repairServiceMock) FindByExpediente(ctx context.Context, expediente string) (repair.Repair, error) {
	if mock.FindByExpedienteFunc == nil {
		panic("repairServiceMock.FindByExpedienteFunc: method is nil but repairService.FindByExpediente was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Expediente string
	}{Ctx: ctx, Expediente: expediente}
	mock.lockFindByExpediente.Lock()
	mock.calls.FindByExpediente = append(mock.calls.FindByExpediente, callInfo)
	mock.lockFindByExpediente.Unlock()
	return mock.FindByExpedienteFunc(ctx, expediente)
}

func (mock *repairServiceMock) FindByExpedienteCalls() []struct {
	Ctx        context.Context
	Expediente string
} {
	mock.lockFindByExpediente.RLock()
	calls := mock.calls.FindByExpediente
	mock.lockFindByExpediente.RUnlock()
	return calls
}

func (mock *repairServiceMock) UpdateByExpediente(ctx context.Context, expediente string, sub wizard.Submission) (repair.UpdateResult, error) {
	if mock.UpdateByExpedienteFunc == nil {
		panic("repairServiceMock.UpdateByExpedienteFunc: method is nil but repairService.UpdateByExpediente was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Expediente string
		Sub        wizard.Submission
	}{Ctx: ctx, Expediente: expediente, Sub: sub}
	mock.lockUpdateByExpediente.Lock()
	mock.calls.UpdateByExpediente = append(mock.calls.UpdateByExpediente, callInfo)
	mock.lockUpdateByExpediente.Unlock()
	return mock.UpdateByExpedienteFunc(ctx, expediente, sub)
}

func (mock *repairServiceMock) UpdateByExpedienteCalls() []struct {
	Ctx        context.Context
	Expediente string
	Sub        wizard.Submission
} {
	mock.lockUpdateByExpediente.RLock()
	calls := mock.calls.UpdateByExpediente
	mock.lockUpdateByExpediente.RUnlock()
	return calls
}

func (mock *repairServiceMock) List(ctx context.Context, limit int) ([]repair.Repair, error) {
	if mock.ListFunc == nil {
		panic("repairServiceMock.ListFunc: method is nil but repairService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, limit)
}

func (mock *repairServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ supportService = &supportServiceMock{}

type supportServiceMock struct {
	GetFunc    func(ctx context.Context, l support.Lookup) (support.Record, error)
	UpdateFunc func(ctx context.Context, l support.Lookup, patch wizard.Submission) (support.UpdateResult, error)
	SubmitFunc func(ctx context.Context, l support.Lookup, sub wizard.Submission) (support.UpdateResult, error)

	calls struct {
		Get []struct {
			Ctx context.Context
			L   support.Lookup
		}
		Update []struct {
			Ctx   context.Context
			L     support.Lookup
			Patch wizard.Submission
		}
		Submit []struct {
			Ctx context.Context
			L   support.Lookup
			Sub wizard.Submission
		}
	}
	lockGet    sync.RWMutex
	lockUpdate sync.RWMutex
	lockSubmit sync.RWMutex
}

func (mock *supportServiceMock) Get(ctx context.Context, l support.Lookup) (support.Record, error) {
	if mock.GetFunc == nil {
		panic("supportServiceMock.GetFunc: method is nil but supportService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   support.Lookup
	}{Ctx: ctx, L: l}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, l)
}

func (mock *supportServiceMock) GetCalls() []struct {
	Ctx context.Context
	L   support.Lookup
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *supportServiceMock) Update(ctx context.Context, l support.Lookup, patch wizard.Submission) (support.UpdateResult, error) {
	if mock.UpdateFunc == nil {
		panic("supportServiceMock.UpdateFunc: method is nil but supportService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		L     support.Lookup
		Patch wizard.Submission
	}{Ctx: ctx, L: l, Patch: patch}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, l, patch)
}

func (mock *supportServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	L     support.Lookup
	Patch wizard.Submission
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *supportServiceMock) Submit(ctx context.Context, l support.Lookup, sub wizard.Submission) (support.UpdateResult, error) {
	if mock.SubmitFunc == nil {
		panic("supportServiceMock.SubmitFunc: method is nil but supportService.Submit was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   support.Lookup
		Sub wizard.Submission
	}{Ctx: ctx, L: l, Sub: sub}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, l, sub)
}

func (mock *supportServiceMock) SubmitCalls() []struct {
	Ctx context.Context
	L   support.Lookup
	Sub wizard.Submission
} {
	mock.lockSubmit.RLock()
	calls := mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}

var _ bookingService = &bookingServiceMock{}

type bookingServiceMock struct {
	SlotsFunc func(date string, now time.Time) ([]string, error)
	BookFunc  func(ctx context.Context, sub wizard.Submission) (booking.Booking, error)

	calls struct {
		Slots []struct {
			Date string
			Now  time.Time
		}
		Book []struct {
			Ctx context.Context
			Sub wizard.Submission
		}
	}
	lockSlots sync.RWMutex
	lockBook  sync.RWMutex
}

func (mock *bookingServiceMock) Slots(date string, now time.Time) ([]string, error) {
	if mock.SlotsFunc == nil {
		panic("bookingServiceMock.SlotsFunc: method is nil but bookingService.Slots was just called")
	}
	callInfo := struct {
		Date string
		Now  time.Time
	}{Date: date, Now: now}
	mock.lockSlots.Lock()
	mock.calls.Slots = append(mock.calls.Slots, callInfo)
	mock.lockSlots.Unlock()
	return mock.SlotsFunc(date, now)
}

func (mock *bookingServiceMock) SlotsCalls() []struct {
	Date string
	Now  time.Time
} {
	mock.lockSlots.RLock()
	calls := mock.calls.Slots
	mock.lockSlots.RUnlock()
	return calls
}

func (mock *bookingServiceMock) Book(ctx context.Context, sub wizard.Submission) (booking.Booking, error) {
	if mock.BookFunc == nil {
		panic("bookingServiceMock.BookFunc: method is nil but bookingService.Book was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Sub wizard.Submission
	}{Ctx: ctx, Sub: sub}
	mock.lockBook.Lock()
	mock.calls.Book = append(mock.calls.Book, callInfo)
	mock.lockBook.Unlock()
	return mock.BookFunc(ctx, sub)
}

func (mock *bookingServiceMock) BookCalls() []struct {
	Ctx context.Context
	Sub wizard.Submission
} {
	mock.lockBook.RLock()
	calls := mock.calls.Book
	mock.lockBook.RUnlock()
	return calls
}

var _ fileEncoder = &fileEncoderMock{}

type fileEncoderMock struct {
	EncodeAllFunc func(ctx context.Context, blobs []attachment.Blob, device domain.Device) []attachment.Result

	calls struct {
		EncodeAll []struct {
			Ctx    context.Context
			Blobs  []attachment.Blob
			Device domain.Device
		}
	}
	lockEncodeAll sync.RWMutex
}

func (mock *fileEncoderMock) EncodeAll(ctx context.Context, blobs []attachment.Blob, device domain.Device) []attachment.Result {
	if mock.EncodeAllFunc == nil {
		panic("fileEncoderMock.EncodeAllFunc: method is nil but fileEncoder.EncodeAll was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Blobs  []attachment.Blob
		Device domain.Device
	}{Ctx: ctx, Blobs: blobs, Device: device}
	mock.lockEncodeAll.Lock()
	mock.calls.EncodeAll = append(mock.calls.EncodeAll, callInfo)
	mock.lockEncodeAll.Unlock()
	return mock.EncodeAllFunc(ctx, blobs, device)
}

func (mock *fileEncoderMock) EncodeAllCalls() []struct {
	Ctx    context.Context
	Blobs  []attachment.Blob
	Device domain.Device
} {
	mock.lockEncodeAll.RLock()
	calls := mock.calls.EncodeAll
	mock.lockEncodeAll.RUnlock()
	return calls
}
