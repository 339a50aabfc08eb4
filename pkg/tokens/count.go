package tokens

import (
	"github.com/pkg/errors"
	"github.com/tiktoken-go/tokenizer"

	"github.com/DarrenJCoxon/educational-adventure-bot/pkg/conversation"
	"github.com/DarrenJCoxon/educational-adventure-bot/pkg/finetune"
)

// DefaultEncoding is used when no model-specific codec is known. The hosted
// fine-tuning service bills by tokens; cl100k_base gives a close enough
// estimate for sizing an upload.
const DefaultEncoding = tokenizer.Cl100kBase

// GetCodec returns the codec for a model, falling back to the default
// encoding for model ids the tokenizer does not know (fine-tuned model ids
// never match).
func GetCodec(model string) (tokenizer.Codec, error) {
	if model != "" {
		if c, err := tokenizer.ForModel(tokenizer.Model(model)); err == nil {
			return c, nil
		}
	}
	c, err := tokenizer.Get(DefaultEncoding)
	if err != nil {
		return nil, errors.Wrap(err, "could not create tokenizer")
	}
	return c, nil
}

// CountText returns the token count of a single string.
func CountText(codec tokenizer.Codec, text string) (int, error) {
	ids, _, err := codec.Encode(text)
	if err != nil {
		return 0, errors.Wrap(err, "could not encode text")
	}
	return len(ids), nil
}

// CountConversation sums the token counts of every message in a transcript.
func CountConversation(codec tokenizer.Codec, messages conversation.Conversation) (int, error) {
	total := 0
	for _, msg := range messages {
		n, err := CountText(codec, msg.Text)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

// CountExamples sums the token counts of a training set.
func CountExamples(codec tokenizer.Codec, examples []finetune.Example) (int, error) {
	total := 0
	for i, example := range examples {
		for _, msg := range example.Messages {
			n, err := CountText(codec, msg.Content)
			if err != nil {
				return 0, errors.Wrapf(err, "example %d", i)
			}
			total += n
		}
	}
	return total, nil
}
