// Package facets registers the built-in facet taxonomy: the capability
// chains of a conventional single-inheritance widget toolkit, expressed as
// registration data instead of per-kind hook code.
//
// Every kind below used to be a separate registration site in adapters of
// this shape; here each is one Descriptor naming its cascade parent, its
// native subscriptions, and its placement rule, and the cascade engine
// interprets the table.
package facets

import (
	"github.com/go-loom/loom/pkg/facet"
	"github.com/go-loom/loom/pkg/native"
)

// Terminal facets. These have no further ancestor.
const (
	// KindVisual marks anything that appears on screen.
	KindVisual facet.Kind = "visual"
	// KindLayoutable marks participation in layout passes.
	KindLayoutable facet.Kind = "layoutable"
	// KindInteractive marks hit-test visibility.
	KindInteractive facet.Kind = "interactive"
)

// Backbone of the hierarchy.
const (
	// KindElement is the base visual element every widget carries.
	KindElement facet.Kind = "element"
	// KindInputElement adds keyboard and focus capability.
	KindInputElement facet.Kind = "input-element"
	// KindControl is the base for templated, focusable controls.
	KindControl facet.Kind = "control"
	// KindContentControl is the generic single-content holder.
	KindContentControl facet.Kind = "content-control"
)

// Content controls.
const (
	// KindButton is the clickable content holder.
	KindButton       facet.Kind = "button"
	KindToggleButton facet.Kind = "toggle-button"
	KindCheckBox     facet.Kind = "check-box"
	KindRadioButton  facet.Kind = "radio-button"
	KindExpander     facet.Kind = "expander"
	KindGroupBox     facet.Kind = "group-box"
	KindScrollHost   facet.Kind = "scroll-host"
)

// Panels: ordered child collections.
const (
	KindPanel       facet.Kind = "panel"
	KindStackPanel  facet.Kind = "stack-panel"
	KindGridPanel   facet.Kind = "grid-panel"
	KindDockPanel   facet.Kind = "dock-panel"
	KindWrapPanel   facet.Kind = "wrap-panel"
	KindCanvasPanel facet.Kind = "canvas-panel"
)

// Decorators and leaves.
const (
	KindDecorator facet.Kind = "decorator"
	KindBorder    facet.Kind = "border"
	KindViewbox   facet.Kind = "viewbox"
	KindTextBlock facet.Kind = "text-block"
	KindImage     facet.Kind = "image"
	KindShape     facet.Kind = "shape"
	KindRectangle facet.Kind = "rectangle"
	KindEllipse   facet.Kind = "ellipse"
	KindLine      facet.Kind = "line"
	KindPath      facet.Kind = "path"
)

// Text input and range controls.
const (
	KindTextBox     facet.Kind = "text-box"
	KindPasswordBox facet.Kind = "password-box"
	KindRangeBase   facet.Kind = "range-base"
	KindSlider      facet.Kind = "slider"
	KindProgressBar facet.Kind = "progress-bar"
	KindScrollBar   facet.Kind = "scroll-bar"
)

// Items hosts and their items.
const (
	KindItemsHost facet.Kind = "items-host"
	KindListView  facet.Kind = "list-view"
	KindComboBox  facet.Kind = "combo-box"
	KindTreeView  facet.Kind = "tree-view"
	KindTabHost   facet.Kind = "tab-host"
	KindMenu      facet.Kind = "menu"
	KindToolbar   facet.Kind = "toolbar"
	KindStatusBar facet.Kind = "status-bar"
	KindItemHost  facet.Kind = "item-host"
	KindListItem  facet.Kind = "list-item"
	KindTabItem   facet.Kind = "tab-item"
	KindTreeItem  facet.Kind = "tree-item"
	KindMenuItem  facet.Kind = "menu-item"
)

// Roots and overlays. These opt out of placement.
const (
	KindWindow facet.Kind = "window"
	KindPopup  facet.Kind = "popup"
)

// Builtin returns the validated built-in taxonomy. It panics only on a
// defective catalog, which the package tests rule out.
func Builtin() *facet.Taxonomy {
	return facet.MustTaxonomy(Catalog()...)
}

// Catalog returns the raw built-in descriptor list, before validation.
// Tooling that wants to re-validate or export the table uses this.
func Catalog() []facet.Descriptor {
	pointer := []native.EventKind{
		native.EventPointerPress,
		native.EventPointerRelease,
		native.EventPointerMove,
	}
	keysAndFocus := []native.EventKind{
		native.EventKeyDown,
		native.EventKeyUp,
		native.EventFocusGained,
		native.EventFocusLost,
	}

	return []facet.Descriptor{
		// terminals
		{Kind: KindVisual},
		{Kind: KindLayoutable, CascadeParent: KindVisual},
		{Kind: KindInteractive, CascadeParent: KindLayoutable},

		// backbone
		{Kind: KindElement, CascadeParent: KindInteractive, Placement: facet.RuleChildCollection, Subscriptions: pointer},
		{Kind: KindInputElement, CascadeParent: KindElement, Subscriptions: keysAndFocus},
		{Kind: KindControl, CascadeParent: KindInputElement},
		{Kind: KindContentControl, CascadeParent: KindControl, Content: true},

		// content controls
		{Kind: KindButton, CascadeParent: KindContentControl, Subscriptions: []native.EventKind{native.EventClick}},
		{Kind: KindToggleButton, CascadeParent: KindButton, Subscriptions: []native.EventKind{native.EventValueChanged}},
		{Kind: KindCheckBox, CascadeParent: KindToggleButton},
		{Kind: KindRadioButton, CascadeParent: KindToggleButton},
		{Kind: KindExpander, CascadeParent: KindContentControl, Subscriptions: []native.EventKind{native.EventValueChanged}},
		{Kind: KindGroupBox, CascadeParent: KindContentControl},
		{Kind: KindScrollHost, CascadeParent: KindContentControl, Subscriptions: []native.EventKind{native.EventValueChanged}},

		// panels
		{Kind: KindPanel, CascadeParent: KindElement, Container: true},
		{Kind: KindStackPanel, CascadeParent: KindPanel},
		{Kind: KindGridPanel, CascadeParent: KindPanel},
		{Kind: KindDockPanel, CascadeParent: KindPanel},
		{Kind: KindWrapPanel, CascadeParent: KindPanel},
		{Kind: KindCanvasPanel, CascadeParent: KindPanel},

		// decorators and leaves
		{Kind: KindDecorator, CascadeParent: KindElement, Content: true},
		{Kind: KindBorder, CascadeParent: KindDecorator},
		{Kind: KindViewbox, CascadeParent: KindDecorator},
		{Kind: KindTextBlock, CascadeParent: KindElement},
		{Kind: KindImage, CascadeParent: KindElement},
		{Kind: KindShape, CascadeParent: KindElement},
		{Kind: KindRectangle, CascadeParent: KindShape},
		{Kind: KindEllipse, CascadeParent: KindShape},
		{Kind: KindLine, CascadeParent: KindShape},
		{Kind: KindPath, CascadeParent: KindShape},

		// text input and ranges
		{Kind: KindTextBox, CascadeParent: KindControl, Subscriptions: []native.EventKind{native.EventTextChanged}},
		{Kind: KindPasswordBox, CascadeParent: KindControl, Subscriptions: []native.EventKind{native.EventTextChanged}},
		{Kind: KindRangeBase, CascadeParent: KindControl, Subscriptions: []native.EventKind{native.EventValueChanged}},
		{Kind: KindSlider, CascadeParent: KindRangeBase},
		{Kind: KindProgressBar, CascadeParent: KindRangeBase},
		{Kind: KindScrollBar, CascadeParent: KindRangeBase},

		// items hosts and items
		{Kind: KindItemsHost, CascadeParent: KindControl, Container: true},
		{Kind: KindListView, CascadeParent: KindItemsHost, Subscriptions: []native.EventKind{native.EventValueChanged}},
		{Kind: KindComboBox, CascadeParent: KindItemsHost, Subscriptions: []native.EventKind{native.EventValueChanged}},
		{Kind: KindTreeView, CascadeParent: KindItemsHost, Subscriptions: []native.EventKind{native.EventValueChanged}},
		{Kind: KindTabHost, CascadeParent: KindItemsHost, Subscriptions: []native.EventKind{native.EventValueChanged}},
		{Kind: KindMenu, CascadeParent: KindItemsHost},
		{Kind: KindToolbar, CascadeParent: KindItemsHost},
		{Kind: KindStatusBar, CascadeParent: KindItemsHost},
		{Kind: KindItemHost, CascadeParent: KindContentControl},
		{Kind: KindListItem, CascadeParent: KindItemHost},
		{Kind: KindTabItem, CascadeParent: KindItemHost},
		{Kind: KindTreeItem, CascadeParent: KindItemHost},
		{Kind: KindMenuItem, CascadeParent: KindItemHost, Subscriptions: []native.EventKind{native.EventClick}},

		// roots and overlays
		{Kind: KindWindow, CascadeParent: KindContentControl, Placement: facet.RuleNone, Subscriptions: []native.EventKind{native.EventClosed}},
		{Kind: KindPopup, CascadeParent: KindDecorator, Placement: facet.RuleNone},
	}
}
