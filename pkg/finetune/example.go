package finetune

// Package finetune handles the training data file the hosted fine-tuning
// dashboard consumes: one JSON object per line, each carrying an ordered
// list of chat messages. The chat session itself never reads these files;
// they exist to prepare and sanity-check an upload.

import (
	"github.com/DarrenJCoxon/educational-adventure-bot/pkg/conversation"
)

// MinExamples is the minimum number of training examples the hosted service
// accepts for a fine-tuning job.
const MinExamples = 8

// TrainingMessage is one chat turn inside a training example.
type TrainingMessage struct {
	Role    conversation.Role `json:"role"`
	Content string            `json:"content"`
}

// Example is a single line of the training file.
type Example struct {
	Messages []TrainingMessage `json:"messages"`
}

// FromConversation converts a recorded transcript into a training example,
// system message included.
func FromConversation(messages conversation.Conversation) Example {
	ret := Example{
		Messages: make([]TrainingMessage, 0, len(messages)),
	}
	for _, msg := range messages {
		ret.Messages = append(ret.Messages, TrainingMessage{
			Role:    msg.Role,
			Content: msg.Text,
		})
	}
	return ret
}
