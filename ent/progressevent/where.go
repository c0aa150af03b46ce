// Code generated by ent, DO NOT EDIT.

package progressevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/pathwise/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldTimestamp, v))
}

// JourneyID applies equality check predicate on the "journey_id" field. It's identical to JourneyIDEQ.
func JourneyID(v uuid.UUID) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldJourneyID, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldKind, v))
}

// StepNumber applies equality check predicate on the "step_number" field. It's identical to StepNumberEQ.
func StepNumber(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldStepNumber, v))
}

// Detail applies equality check predicate on the "detail" field. It's identical to DetailEQ.
func Detail(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldDetail, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldTimestamp, v))
}

// JourneyIDEQ applies the EQ predicate on the "journey_id" field.
func JourneyIDEQ(v uuid.UUID) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldJourneyID, v))
}

// JourneyIDNEQ applies the NEQ predicate on the "journey_id" field.
func JourneyIDNEQ(v uuid.UUID) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldJourneyID, v))
}

// JourneyIDIn applies the In predicate on the "journey_id" field.
func JourneyIDIn(vs ...uuid.UUID) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldJourneyID, vs...))
}

// JourneyIDNotIn applies the NotIn predicate on the "journey_id" field.
func JourneyIDNotIn(vs ...uuid.UUID) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldJourneyID, vs...))
}

// JourneyIDGT applies the GT predicate on the "journey_id" field.
func JourneyIDGT(v uuid.UUID) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldJourneyID, v))
}

// JourneyIDGTE applies the GTE predicate on the "journey_id" field.
func JourneyIDGTE(v uuid.UUID) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldJourneyID, v))
}

// JourneyIDLT applies the LT predicate on the "journey_id" field.
func JourneyIDLT(v uuid.UUID) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldJourneyID, v))
}

// JourneyIDLTE applies the LTE predicate on the "journey_id" field.
func JourneyIDLTE(v uuid.UUID) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldJourneyID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldContainsFold(FieldKind, v))
}

// StepNumberEQ applies the EQ predicate on the "step_number" field.
func StepNumberEQ(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldStepNumber, v))
}

// StepNumberNEQ applies the NEQ predicate on the "step_number" field.
func StepNumberNEQ(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldStepNumber, v))
}

// StepNumberIn applies the In predicate on the "step_number" field.
func StepNumberIn(vs ...int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldStepNumber, vs...))
}

// StepNumberNotIn applies the NotIn predicate on the "step_number" field.
func StepNumberNotIn(vs ...int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldStepNumber, vs...))
}

// StepNumberGT applies the GT predicate on the "step_number" field.
func StepNumberGT(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldStepNumber, v))
}

// StepNumberGTE applies the GTE predicate on the "step_number" field.
func StepNumberGTE(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldStepNumber, v))
}

// StepNumberLT applies the LT predicate on the "step_number" field.
func StepNumberLT(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldStepNumber, v))
}

// StepNumberLTE applies the LTE predicate on the "step_number" field.
func StepNumberLTE(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldStepNumber, v))
}

// DetailEQ applies the EQ predicate on the "detail" field.
func DetailEQ(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldDetail, v))
}

// DetailNEQ applies the NEQ predicate on the "detail" field.
func DetailNEQ(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldDetail, v))
}

// DetailIn applies the In predicate on the "detail" field.
func DetailIn(vs ...string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldDetail, vs...))
}

// DetailNotIn applies the NotIn predicate on the "detail" field.
func DetailNotIn(vs ...string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldDetail, vs...))
}

// DetailGT applies the GT predicate on the "detail" field.
func DetailGT(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldDetail, v))
}

// DetailGTE applies the GTE predicate on the "detail" field.
func DetailGTE(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldDetail, v))
}

// DetailLT applies the LT predicate on the "detail" field.
func DetailLT(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldDetail, v))
}

// DetailLTE applies the LTE predicate on the "detail" field.
func DetailLTE(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldDetail, v))
}

// DetailContains applies the Contains predicate on the "detail" field.
func DetailContains(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldContains(FieldDetail, v))
}

// DetailHasPrefix applies the HasPrefix predicate on the "detail" field.
func DetailHasPrefix(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldHasPrefix(FieldDetail, v))
}

// DetailHasSuffix applies the HasSuffix predicate on the "detail" field.
func DetailHasSuffix(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldHasSuffix(FieldDetail, v))
}

// DetailEqualFold applies the EqualFold predicate on the "detail" field.
func DetailEqualFold(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEqualFold(FieldDetail, v))
}

// DetailContainsFold applies the ContainsFold predicate on the "detail" field.
func DetailContainsFold(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldContainsFold(FieldDetail, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProgressEvent) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProgressEvent) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProgressEvent) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.NotPredicates(p))
}
