package generate_slots

import "time"

// UseCase use case генерации пачки слотов для выбранного режима
type UseCase struct {
	opts         Options
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// Некорректные параметры заменяются значениями по умолчанию
func NewUseCase(opts Options, logger Logger) *UseCase {
	defaults := DefaultOptions()
	if opts.BatchSize <= 0 {
		opts.BatchSize = defaults.BatchSize
	}
	if opts.Step <= 0 {
		opts.Step = defaults.Step
	}

	return &UseCase{
		opts:         opts,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute генерирует новую пачку слотов от текущего момента
func (uc *UseCase) Execute(req *Request) *Response {
	now := uc.timeProvider.Now()
	slots := generateSlots(now, req.Mode, uc.opts)

	uc.logger.Debug("GenerateSlots: mode=%q capacity=%s, %d slots from %s",
		req.Mode.Key, req.Mode.Capacity, len(slots), now.Format(time.TimeOnly))

	return &Response{
		GeneratedAt: now,
		Slots:       slots,
	}
}
