// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/pathwise/ent/journey"
	"github.com/abhisek/pathwise/ent/llmrequestevent"
	"github.com/abhisek/pathwise/ent/progressevent"
	"github.com/abhisek/pathwise/ent/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	journeyFields := schema.Journey{}.Fields()
	_ = journeyFields
	// journeyDescVersion is the schema descriptor for version field.
	journeyDescVersion := journeyFields[1].Descriptor()
	// journey.DefaultVersion holds the default value on creation for the version field.
	journey.DefaultVersion = journeyDescVersion.Default.(int64)
	// journeyDescTargetRole is the schema descriptor for target_role field.
	journeyDescTargetRole := journeyFields[2].Descriptor()
	// journey.TargetRoleValidator is a validator for the "target_role" field. It is called by the builders before save.
	journey.TargetRoleValidator = journeyDescTargetRole.Validators[0].(func(string) error)
	// journeyDescStatus is the schema descriptor for status field.
	journeyDescStatus := journeyFields[3].Descriptor()
	// journey.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	journey.StatusValidator = journeyDescStatus.Validators[0].(func(string) error)
	// journeyDescCreatedAt is the schema descriptor for created_at field.
	journeyDescCreatedAt := journeyFields[5].Descriptor()
	// journey.DefaultCreatedAt holds the default value on creation for the created_at field.
	journey.DefaultCreatedAt = journeyDescCreatedAt.Default.(func() time.Time)
	// journeyDescUpdatedAt is the schema descriptor for updated_at field.
	journeyDescUpdatedAt := journeyFields[6].Descriptor()
	// journey.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	journey.DefaultUpdatedAt = journeyDescUpdatedAt.Default.(func() time.Time)
	// journey.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	journey.UpdateDefaultUpdatedAt = journeyDescUpdatedAt.UpdateDefault.(func() time.Time)
	// journeyDescID is the schema descriptor for id field.
	journeyDescID := journeyFields[0].Descriptor()
	// journey.DefaultID holds the default value on creation for the id field.
	journey.DefaultID = journeyDescID.Default.(func() uuid.UUID)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	progresseventMixin := schema.ProgressEvent{}.Mixin()
	progresseventMixinFields0 := progresseventMixin[0].Fields()
	_ = progresseventMixinFields0
	progresseventFields := schema.ProgressEvent{}.Fields()
	_ = progresseventFields
	// progresseventDescTimestamp is the schema descriptor for timestamp field.
	progresseventDescTimestamp := progresseventMixinFields0[1].Descriptor()
	// progressevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	progressevent.DefaultTimestamp = progresseventDescTimestamp.Default.(func() time.Time)
	// progresseventDescKind is the schema descriptor for kind field.
	progresseventDescKind := progresseventFields[1].Descriptor()
	// progressevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	progressevent.KindValidator = progresseventDescKind.Validators[0].(func(string) error)
	// progresseventDescStepNumber is the schema descriptor for step_number field.
	progresseventDescStepNumber := progresseventFields[2].Descriptor()
	// progressevent.DefaultStepNumber holds the default value on creation for the step_number field.
	progressevent.DefaultStepNumber = progresseventDescStepNumber.Default.(int)
	// progresseventDescDetail is the schema descriptor for detail field.
	progresseventDescDetail := progresseventFields[3].Descriptor()
	// progressevent.DefaultDetail holds the default value on creation for the detail field.
	progressevent.DefaultDetail = progresseventDescDetail.Default.(string)
}
