package vdom

// PatchOp is the type of patch operation.
type PatchOp uint8

const (
	PatchSetText     PatchOp = 0x01 // Replace the text content of an element
	PatchSetAttr     PatchOp = 0x02 // Set or update an attribute
	PatchRemoveAttr  PatchOp = 0x03 // Remove an attribute
	PatchReplaceNode PatchOp = 0x07 // Replace an element and its subtree
)

// String returns the string representation of the PatchOp.
func (op PatchOp) String() string {
	switch op {
	case PatchSetText:
		return "SetText"
	case PatchSetAttr:
		return "SetAttr"
	case PatchRemoveAttr:
		return "RemoveAttr"
	case PatchReplaceNode:
		return "ReplaceNode"
	default:
		return "Unknown"
	}
}

// Patch is a single DOM operation, addressed by hydration ID.
type Patch struct {
	Op    PatchOp
	HID   string // Target element
	Key   string // Attribute name for SetAttr/RemoveAttr
	Value string // Text or attribute value
	Node  *VNode // Replacement subtree for ReplaceNode
}
