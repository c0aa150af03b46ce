// Code generated by ent, DO NOT EDIT.

package journey

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/pathwise/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Journey {
	return predicate.Journey(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Journey {
	return predicate.Journey(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Journey {
	return predicate.Journey(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Journey {
	return predicate.Journey(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Journey {
	return predicate.Journey(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Journey {
	return predicate.Journey(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Journey {
	return predicate.Journey(sql.FieldLTE(FieldID, id))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int64) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldVersion, v))
}

// TargetRole applies equality check predicate on the "target_role" field. It's identical to TargetRoleEQ.
func TargetRole(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldTargetRole, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldUpdatedAt, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int64) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int64) predicate.Journey {
	return predicate.Journey(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int64) predicate.Journey {
	return predicate.Journey(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int64) predicate.Journey {
	return predicate.Journey(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int64) predicate.Journey {
	return predicate.Journey(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int64) predicate.Journey {
	return predicate.Journey(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int64) predicate.Journey {
	return predicate.Journey(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int64) predicate.Journey {
	return predicate.Journey(sql.FieldLTE(FieldVersion, v))
}

// TargetRoleEQ applies the EQ predicate on the "target_role" field.
func TargetRoleEQ(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldTargetRole, v))
}

// TargetRoleNEQ applies the NEQ predicate on the "target_role" field.
func TargetRoleNEQ(v string) predicate.Journey {
	return predicate.Journey(sql.FieldNEQ(FieldTargetRole, v))
}

// TargetRoleIn applies the In predicate on the "target_role" field.
func TargetRoleIn(vs ...string) predicate.Journey {
	return predicate.Journey(sql.FieldIn(FieldTargetRole, vs...))
}

// TargetRoleNotIn applies the NotIn predicate on the "target_role" field.
func TargetRoleNotIn(vs ...string) predicate.Journey {
	return predicate.Journey(sql.FieldNotIn(FieldTargetRole, vs...))
}

// TargetRoleGT applies the GT predicate on the "target_role" field.
func TargetRoleGT(v string) predicate.Journey {
	return predicate.Journey(sql.FieldGT(FieldTargetRole, v))
}

// TargetRoleGTE applies the GTE predicate on the "target_role" field.
func TargetRoleGTE(v string) predicate.Journey {
	return predicate.Journey(sql.FieldGTE(FieldTargetRole, v))
}

// TargetRoleLT applies the LT predicate on the "target_role" field.
func TargetRoleLT(v string) predicate.Journey {
	return predicate.Journey(sql.FieldLT(FieldTargetRole, v))
}

// TargetRoleLTE applies the LTE predicate on the "target_role" field.
func TargetRoleLTE(v string) predicate.Journey {
	return predicate.Journey(sql.FieldLTE(FieldTargetRole, v))
}

// TargetRoleContains applies the Contains predicate on the "target_role" field.
func TargetRoleContains(v string) predicate.Journey {
	return predicate.Journey(sql.FieldContains(FieldTargetRole, v))
}

// TargetRoleHasPrefix applies the HasPrefix predicate on the "target_role" field.
func TargetRoleHasPrefix(v string) predicate.Journey {
	return predicate.Journey(sql.FieldHasPrefix(FieldTargetRole, v))
}

// TargetRoleHasSuffix applies the HasSuffix predicate on the "target_role" field.
func TargetRoleHasSuffix(v string) predicate.Journey {
	return predicate.Journey(sql.FieldHasSuffix(FieldTargetRole, v))
}

// TargetRoleEqualFold applies the EqualFold predicate on the "target_role" field.
func TargetRoleEqualFold(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEqualFold(FieldTargetRole, v))
}

// TargetRoleContainsFold applies the ContainsFold predicate on the "target_role" field.
func TargetRoleContainsFold(v string) predicate.Journey {
	return predicate.Journey(sql.FieldContainsFold(FieldTargetRole, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Journey {
	return predicate.Journey(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Journey {
	return predicate.Journey(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Journey {
	return predicate.Journey(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Journey {
	return predicate.Journey(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Journey {
	return predicate.Journey(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Journey {
	return predicate.Journey(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Journey {
	return predicate.Journey(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Journey {
	return predicate.Journey(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Journey {
	return predicate.Journey(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Journey {
	return predicate.Journey(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Journey {
	return predicate.Journey(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Journey) predicate.Journey {
	return predicate.Journey(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Journey) predicate.Journey {
	return predicate.Journey(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Journey) predicate.Journey {
	return predicate.Journey(sql.NotPredicates(p))
}
