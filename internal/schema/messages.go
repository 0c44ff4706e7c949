package schema

const (
	msgLabelRequired         = "Please enter a label."
	msgUnknownType           = "Unknown field type."
	msgElementsTypeInvalid   = "Lists of lists and lists of checkboxes are not supported."
	msgEnumRequired          = "Please select a selection."
	msgEnumMissing           = "The referenced selection does not exist."
	msgSubformRequired       = "Please select a subform."
	msgSubformMissing        = "The referenced subform does not exist."
	msgRequiredCheckbox      = "A checkbox that is not optional has to be checked every time the form is filled in."
	msgBoundsInverted        = "The minimum value is greater than the maximum value."
	msgDefaultDiscarded      = "The default value does not match the field type and was discarded."
	msgFieldUsedTwice        = "This field is used multiple times"
	msgFieldNotFound         = "This field does not exist."
	msgSubformCycle          = "This form contains itself through its subforms."
	msgTooFewItems           = "A minimum of two selection items is required."
	msgItemIdentifier        = "Identifier required."
	msgItemLabel             = "Label required."
	msgDuplicateItem         = "This identifier is used by another item of this selection."
	msgFoodEnumInUse         = "There is already a food screen with this identifier"
	msgFoodItemInUse         = "There is already a food item with this identifier"
	msgFoodItemNotFound      = "Item not found."
	msgFoodItemNotOnScreen   = "The selected item is not shown on this food screen."
	msgTargetNotFound        = "Target food screen not found."
	msgUnreachable           = "This transition is never used because an earlier transition always matches first."
	msgImageNotFound         = "Image not found."
	msgTitleRequired         = "Please enter a title."
	msgRuntimeDays           = "The default runtime must be at least one day."
	msgTimeFormat            = "Please use the format HH:MM."
	msgNonNegative           = "The value must not be negative."
	msgFormNotFound          = "Form not found."
	msgInitialFoodEnumAbsent = "Initial food screen not found."
)
