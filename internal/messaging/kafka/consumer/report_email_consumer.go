package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lu2aa/attendance-system/internal/events"
	"github.com/lu2aa/attendance-system/internal/report"
	"github.com/lu2aa/attendance-system/internal/shared/mailer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeReportEmailRequested renders the monthly report as a PDF and mails
// it to the requested recipient. Transient failures leave the message
// uncommitted so the next poll retries it.
func ConsumeReportEmailRequested(
	ctx context.Context,
	reader *kafkago.Reader,
	reportService report.Service,
	mail mailer.Mailer,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.report_email")
	log.Info("report email consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("report email consumer stopped")
				return
			}
			log.Error("fetch report email message failed", zap.Error(err))
			continue
		}

		var event events.ReportEmailRequestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode report email event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		summary, err := reportService.MonthlySummary(ctx, event.EmployeeNumber, event.Month)
		if err != nil {
			log.Error("build monthly summary failed",
				zap.String("employee_number", event.EmployeeNumber),
				zap.String("month", event.Month),
				zap.Error(err),
			)
			continue
		}

		pdf, err := reportService.RenderPDF(summary)
		if err != nil {
			log.Error("render report pdf failed",
				zap.String("employee_number", event.EmployeeNumber),
				zap.Error(err),
			)
			continue
		}

		subject := fmt.Sprintf("Monthly attendance report %s - %s", event.Month, summary.EmployeeName)
		body := fmt.Sprintf(
			"Attached is the attendance report for %s (%s) covering %s.",
			summary.EmployeeName, summary.EmployeeNumber, event.Month,
		)
		attachmentName := fmt.Sprintf("attendance_report_%s_%s.pdf", event.EmployeeNumber, event.Month)

		if err := mail.Send(ctx, event.Recipient, subject, body, pdf, attachmentName); err != nil {
			log.Error("send report email failed",
				zap.String("recipient", event.Recipient),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit report email message failed", zap.Error(err))
			continue
		}

		log.Info("report email sent",
			zap.String("employee_number", event.EmployeeNumber),
			zap.String("month", event.Month),
			zap.String("recipient", event.Recipient),
		)
	}
}
