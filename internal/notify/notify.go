package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
)

// Event types published on delivery milestones.
const (
	TicketCompleted  = "ticket.completed"
	TicketReturned   = "ticket.returned"
	ConsultantPaid   = "consultant.paid"
	AssessmentBought = "assessment.purchased"
)

// Event is the JSON message body.
type Event struct {
	Type       string `json:"type"`
	TicketKind string `json:"ticketKind,omitempty"`
	TicketID   string `json:"ticketId,omitempty"`
	JobID      string `json:"jobId,omitempty"`
	FileName   string `json:"fileName,omitempty"`
	Category   string `json:"category,omitempty"`
	Consultant string `json:"consultantId,omitempty"`
	Assessment string `json:"assessmentId,omitempty"`
	OccurredAt string `json:"occurredAt"`
}

// Publisher delivers events to whoever follows job progress.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

// SNSAPI is the part of the SNS client the publisher needs.
type SNSAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSPublisher publishes events to a topic with an eventType message attribute for subscription filters.
type SNSPublisher struct {
	Client   SNSAPI
	TopicARN string
}

// NewSNSPublisher loads the default AWS credential chain for region.
func NewSNSPublisher(ctx context.Context, region, topicARN string) (*SNSPublisher, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &SNSPublisher{Client: sns.NewFromConfig(cfg), TopicARN: topicARN}, nil
}

func (p *SNSPublisher) Publish(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	_, err = p.Client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(p.TopicARN),
		Message:  aws.String(string(body)),
		MessageAttributes: map[string]snstypes.MessageAttributeValue{
			"eventType": {
				DataType:    aws.String("String"),
				StringValue: aws.String(event.Type),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}
	return nil
}
