package submit_lead

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/internal/integrations/mailrelay"
)

// UseCase use case отправки заявки: валидация, запись лида, уведомления
type UseCase struct {
	leadRepo LeadRepository
	mailer   MailRelayClient
	notify   NotificationConfig
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	leadRepo LeadRepository,
	mailer MailRelayClient,
	notify NotificationConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		leadRepo: leadRepo,
		mailer:   mailer,
		notify:   notify,
		logger:   logger,
	}
}

// Execute выполняет use case отправки заявки
//
// Контракт: записанный лид - единственный критерий успеха. Уведомительные
// письма отправляются best-effort после записи: сбой любого из них
// логируется, но не откатывает лид и не меняет результат операции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitLead: name=%q, email=%q", req.Name, req.Email)

	// 1. Валидация входных данных до любых записей
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitLead: validation failed: %v", err)
		return nil, err
	}

	// 2. Записываем лид со статусом new
	lead := &domain.Lead{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		EventType:   req.EventType,
		EventDate:   req.EventDate,
		GuestCount:  req.GuestCount,
		BudgetRange: req.BudgetRange,
		Message:     req.Message,
		Status:      domain.StatusNew,
	}

	created, err := uc.leadRepo.Create(ctx, lead)
	if err != nil {
		uc.logger.Error("SubmitLead: failed to persist lead: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	uc.logger.Info("SubmitLead: lead persisted id=%d", created.ID)

	// 3. Уведомления: два независимых письма, обе отправки выполняются
	// всегда, сбой одной не отменяет другую
	uc.sendNotifications(ctx, created)

	return &Response{
		ID:        created.ID,
		Status:    string(created.Status),
		CreatedAt: created.CreatedAt,
	}, nil
}

// sendNotifications отправляет письмо администраторам и подтверждение
// клиенту. Результат каждой отправки логируется со своим тегом, чтобы
// исходы не смешивались
func (uc *UseCase) sendNotifications(ctx context.Context, lead *domain.Lead) {
	if err := uc.mailer.Send(ctx, uc.adminMessage(lead)); err != nil {
		uc.logger.Error("SubmitLead: admin_notify failed for lead id=%d: %v", lead.ID, err)
	} else {
		uc.logger.Info("SubmitLead: admin_notify sent for lead id=%d", lead.ID)
	}

	if err := uc.mailer.Send(ctx, uc.customerMessage(lead)); err != nil {
		uc.logger.Error("SubmitLead: customer_confirm failed for lead id=%d: %v", lead.ID, err)
	} else {
		uc.logger.Info("SubmitLead: customer_confirm sent for lead id=%d", lead.ID)
	}
}

func (uc *UseCase) adminMessage(lead *domain.Lead) mailrelay.Message {
	details := fmt.Sprintf("Имя: %s\nEmail: %s\n", lead.Name, lead.Email)
	if lead.Phone != nil {
		details += fmt.Sprintf("Телефон: %s\n", *lead.Phone)
	}
	if lead.EventType != nil {
		details += fmt.Sprintf("Тип мероприятия: %s\n", *lead.EventType)
	}
	if lead.EventDate != nil {
		details += fmt.Sprintf("Дата мероприятия: %s\n", lead.EventDate.Format(domain.DateFormat))
	}
	if lead.GuestCount != nil {
		details += fmt.Sprintf("Гостей: %d\n", *lead.GuestCount)
	}
	if lead.BudgetRange != nil {
		details += fmt.Sprintf("Бюджет: %s\n", *lead.BudgetRange)
	}
	if lead.Message != nil {
		details += fmt.Sprintf("Сообщение:\n%s\n", *lead.Message)
	}

	return mailrelay.Message{
		From:    uc.notify.From,
		To:      uc.notify.AdminRecipients,
		ReplyTo: lead.Email,
		Subject: fmt.Sprintf("Новая заявка #%d: %s", lead.ID, lead.Name),
		HTML:    "<pre>" + details + "</pre>",
		Text:    details,
	}
}

func (uc *UseCase) customerMessage(lead *domain.Lead) mailrelay.Message {
	text := fmt.Sprintf(
		"Здравствуйте, %s!\n\nМы получили вашу заявку и свяжемся с вами в ближайшее время.\n",
		lead.Name,
	)
	if lead.EventDate != nil {
		text += fmt.Sprintf("\nЗапрошенная дата: %s\n", lead.EventDate.Format(domain.DateFormat))
	}

	return mailrelay.Message{
		From:    uc.notify.From,
		To:      []string{lead.Email},
		Subject: "Ваша заявка принята",
		HTML:    "<p>" + text + "</p>",
		Text:    text,
	}
}
