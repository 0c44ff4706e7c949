package schema

import (
	"fmt"
	"regexp"

	"github.com/MKhiriev/f4f-study-portal/models"
)

var hhmmPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

func newResult() Result {
	return Result{Errors: []Issue{}, Warnings: []Issue{}}
}

// checkIdentifier adds the identifier issue, if any, to res.
func checkIdentifier(res *Result, ids IdentifierChecker, identifier, original string) {
	var check models.IdentifierCheckResult
	if ids == nil {
		check = CheckIdentifier(identifier, original, nil)
	} else {
		check = ids.Check(identifier, original)
	}
	if IdentifierAccepted(check, identifier, original) {
		return
	}
	res.addError("identifier", identifierCode(check), check.Message())
}

func identifierCode(r models.IdentifierCheckResult) Code {
	switch r {
	case models.IdentifierReserved:
		return CodeIdentifierReserved
	case models.IdentifierAlreadyInUse:
		return CodeIdentifierInUse
	}
	return CodeIdentifierInvalid
}

// ValidateField decides whether f may be saved. original is the identifier
// f had before editing and is empty for new fields. c resolves enum and
// subform references and may be nil, in which case every reference is
// treated as missing.
func ValidateField(f models.InputField, original string, ids IdentifierChecker, c *Catalog) Result {
	res := newResult()
	if c == nil {
		c = NewCatalog()
	}

	checkIdentifier(&res, ids, f.Identifier, original)

	if f.Label == nil || f.Label.IsEmpty() {
		res.addError("label", CodeLabelRequired, msgLabelRequired)
	}

	if !f.Datatype.IsValid() {
		res.addError("datatype", CodeUnknownType, msgUnknownType)
		return res
	}

	if f.Datatype == models.ListType {
		if f.ElementsType == nil || !f.ElementsType.CanBeListElement() {
			res.addError("elements_type", CodeElementsTypeInvalid, msgElementsTypeInvalid)
			return res
		}
	}

	switch f.EffectiveType() {
	case models.EnumType:
		switch id := f.ReferenceID(); {
		case id == "":
			res.addError("adt_enum_id", CodeReferenceRequired, msgEnumRequired)
		case !hasKey(c.Enums, id):
			res.addError("adt_enum_id", CodeMissingReference, msgEnumMissing)
		}
	case models.FormType:
		switch id := f.ReferenceID(); {
		case id == "":
			res.addError("adt_enum_id", CodeReferenceRequired, msgSubformRequired)
		case !hasKey(c.Forms, id):
			res.addError("adt_enum_id", CodeMissingReference, msgSubformMissing)
		}
	}

	if f.Datatype == models.BoolType && !f.IsOptional() {
		res.addWarning("maybeNull", CodeRequiredCheckbox, msgRequiredCheckbox)
	}

	if IsNumeric(f) && f.MinValue != nil && f.MaxValue != nil && *f.MinValue > *f.MaxValue {
		res.addError("maxValue", CodeBoundsInverted, msgBoundsInverted)
	}

	// An empty string is how an unset default is stored.
	if f.DefaultValue != nil && f.DefaultValue != "" && !CoerceField(f, c).Set {
		res.addWarning("defaultValue", CodeDefaultDiscarded, msgDefaultDiscarded)
	}

	return res
}

// ValidateForm decides whether form may be saved: the identifier must pass
// and no field id may repeat unless the field is a Container. Unknown field
// ids are reported as warnings.
func ValidateForm(form models.InputForm, original string, ids IdentifierChecker, c *Catalog) Result {
	res := newResult()
	if c == nil {
		c = NewCatalog()
	}

	checkIdentifier(&res, ids, form.Identifier, original)

	for _, i := range MultipleIDs(form, c) {
		res.addError(fmt.Sprintf("fields[%d]", i), CodeDuplicateField, msgFieldUsedTwice)
	}

	for i, id := range form.Fields {
		if !hasKey(c.Fields, id) {
			res.addWarning(fmt.Sprintf("fields[%d]", i), CodeMissingReference, msgFieldNotFound)
		}
	}

	return res
}

// MultipleIDs returns the positions in form.Fields that repeat an earlier
// non-Container field id. Ids unknown to c are treated as non-Container.
func MultipleIDs(form models.InputForm, c *Catalog) []int {
	seen := make(map[string]struct{}, len(form.Fields))
	var dups []int
	for i, id := range form.Fields {
		if f, ok := c.Fields[id]; ok && f.Datatype == models.Container {
			continue
		}
		if _, ok := seen[id]; ok {
			dups = append(dups, i)
			continue
		}
		seen[id] = struct{}{}
	}
	return dups
}

// ValidateEnum decides whether e may be saved: the identifier must pass,
// there must be at least two items and every item needs an identifier and
// a label. Items repeating an identifier of the same enum are warned about.
func ValidateEnum(e models.InputEnum, original string, ids IdentifierChecker) Result {
	res := newResult()

	checkIdentifier(&res, ids, e.Identifier, original)

	if len(e.Items) < 2 {
		res.addError("items", CodeTooFewItems, msgTooFewItems)
	}

	seen := make(map[string]struct{}, len(e.Items))
	for i, it := range e.Items {
		if it.Identifier == "" {
			res.addError(fmt.Sprintf("items[%d].identifier", i), CodeItemIdentifierRequired, msgItemIdentifier)
		} else if _, ok := seen[it.Identifier]; ok {
			res.addWarning(fmt.Sprintf("items[%d].identifier", i), CodeDuplicateItem, msgDuplicateItem)
		} else {
			seen[it.Identifier] = struct{}{}
		}
		if it.Label.IsEmpty() {
			res.addError(fmt.Sprintf("items[%d].label", i), CodeItemLabelRequired, msgItemLabel)
		}
	}

	return res
}

// ValidateFoodEnum decides whether a food screen may be saved. Only the
// identifier and the label block saving; references to unknown items or
// screens are warnings.
func ValidateFoodEnum(fe models.FoodEnum, original string, ids IdentifierChecker, c *Catalog) Result {
	res := newResult()
	if c == nil {
		c = NewCatalog()
	}

	var check models.IdentifierCheckResult
	if ids == nil {
		check = CheckIdentifier(fe.Identifier, original, nil)
	} else {
		check = ids.Check(fe.Identifier, original)
	}
	if !IdentifierAccepted(check, fe.Identifier, original) {
		msg := check.Message()
		if check == models.IdentifierAlreadyInUse {
			msg = msgFoodEnumInUse
		}
		res.addError("identifier", identifierCode(check), msg)
	}

	if fe.Label.IsEmpty() {
		res.addError("label", CodeLabelRequired, msgLabelRequired)
	}

	onScreen := make(map[string]struct{}, len(fe.ItemIDs))
	for i, id := range fe.ItemIDs {
		onScreen[id] = struct{}{}
		if !hasKey(c.FoodItems, id) {
			res.addWarning(fmt.Sprintf("item_ids[%d]", i), CodeMissingReference, msgFoodItemNotFound)
		}
	}

	for i, t := range fe.Transitions {
		if !t.IsWildcard() {
			id := *t.SelectedItemID
			path := fmt.Sprintf("transitions[%d].selected_item_id", i)
			if !hasKey(c.FoodItems, id) {
				res.addWarning(path, CodeMissingReference, msgFoodItemNotFound)
			} else if _, ok := onScreen[id]; !ok {
				res.addWarning(path, CodeMissingReference, msgFoodItemNotOnScreen)
			}
		}
		if !t.IsFinish() && !hasKey(c.FoodEnums, *t.TargetEnum) && *t.TargetEnum != fe.ID {
			res.addWarning(fmt.Sprintf("transitions[%d].target_enum", i), CodeMissingReference, msgTargetNotFound)
		}
	}

	for _, i := range UnreachableTransitions(fe) {
		res.addWarning(fmt.Sprintf("transitions[%d]", i), CodeUnreachableTransition, msgUnreachable)
	}

	return res
}

// ValidateFoodEnumItem decides whether a food item may be saved.
func ValidateFoodEnumItem(it models.FoodEnumItem, original string, ids IdentifierChecker, c *Catalog) Result {
	res := newResult()
	if c == nil {
		c = NewCatalog()
	}

	check := CheckIdentifier(it.Identifier, original, nil)
	if ids != nil {
		check = ids.Check(it.Identifier, original)
	}
	if !IdentifierAccepted(check, it.Identifier, original) {
		msg := check.Message()
		if check == models.IdentifierAlreadyInUse {
			msg = msgFoodItemInUse
		}
		res.addError("identifier", identifierCode(check), msg)
	}

	if it.Label.IsEmpty() {
		res.addError("label", CodeLabelRequired, msgLabelRequired)
	}

	if it.Image != nil && *it.Image != "" && !hasKey(c.FoodImages, *it.Image) {
		res.addWarning("image", CodeMissingReference, msgImageNotFound)
	}

	return res
}

// ValidateStudy checks the study parameters. Missing forms or food screens
// are warnings since a study is usually configured before its forms exist.
func ValidateStudy(s models.Study, c *Catalog) Result {
	res := newResult()
	if c == nil {
		c = NewCatalog()
	}

	if s.Title.IsEmpty() {
		res.addError("title", CodeLabelRequired, msgTitleRequired)
	}
	if s.DefaultRuntimeDays < 1 {
		res.addError("default_runtime_days", CodeInvalidValue, msgRuntimeDays)
	}
	if s.ReminderTime != nil && *s.ReminderTime != "" && !hhmmPattern.MatchString(*s.ReminderTime) {
		res.addError("reminder_time", CodeInvalidValue, msgTimeFormat)
	}
	if s.ServerAutosyncInterval < 0 {
		res.addError("server_autosync_interval", CodeInvalidValue, msgNonNegative)
	}
	if s.ServerSyncMaxAge < 0 {
		res.addError("server_sync_max_age", CodeInvalidValue, msgNonNegative)
	}

	if cfg := s.CosinussDeviceConfig; cfg != nil {
		times := []struct{ path, value string }{
			{"cosinuss_device_config.wearing_time_begin", cfg.WearingTimeBegin},
			{"cosinuss_device_config.wearing_time_end", cfg.WearingTimeEnd},
			{"cosinuss_device_config.wearing_time_duration", cfg.WearingTimeDuration},
			{"cosinuss_device_config.reminder_time", cfg.ReminderTime},
		}
		for _, t := range times {
			if !hhmmPattern.MatchString(t.value) {
				res.addError(t.path, CodeInvalidValue, msgTimeFormat)
			}
		}
	}

	for _, ref := range []struct {
		path string
		id   *string
	}{
		{"static_data_form", s.StaticDataForm},
		{"user_data_form", s.UserDataForm},
	} {
		if ref.id != nil && *ref.id != "" && !hasKey(c.Forms, *ref.id) {
			res.addWarning(ref.path, CodeMissingReference, msgFormNotFound)
		}
	}
	if s.InitialFoodEnum != nil && *s.InitialFoodEnum != "" && !hasKey(c.FoodEnums, *s.InitialFoodEnum) {
		res.addWarning("initial_food_enum", CodeMissingReference, msgInitialFoodEnumAbsent)
	}

	return res
}

func hasKey[V any](m map[string]V, key string) bool {
	_, ok := m[key]
	return ok
}
