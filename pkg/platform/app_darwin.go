//go:build darwin

package platform

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa
#import <Cocoa/Cocoa.h>

void hideDockIcon(void) {
    [NSApp setActivationPolicy:NSApplicationActivationPolicyAccessory];
}

void bringToFront(void) {
    [NSApp activateIgnoringOtherApps:YES];
}
*/
import "C"

// HideDockIcon turns the app into a menu bar accessory without a Dock icon
func HideDockIcon() {
	C.hideDockIcon()
}

// BringToFront activates the app so a window shown from the menu bar gets focus
func BringToFront() {
	C.bringToFront()
}
