package stalkermap

import "strings"

// BannerAction supplements the distilled spec with a read-capturing action
// that the original implementation never finished: original_source's
// actions.rs defines exactly one Action, ActionIsPortOpen, whose
// set_read_from_successfull_connection() returns false, so no original
// code ever reads a connection's first bytes. scanner.rs does sketch a
// ServiceOnPort/ServicePortVersion pair in its Actions enum — banner-grab
// and version-probe style operations that would need a read — but neither
// variant is ever matched or implemented; execute_tasks() only reaches
// todo!("run tasks"). BannerAction is this module's own implementation of
// that sketched-but-never-built behavior, included to exercise spec.md §9
// Open Question 1's shared-single-read resolution (two WantsRead actions
// on one task must observe the same read, not trigger two reads). It
// records a lossy UTF-8 rendering of whatever the task's single read
// produced.
type BannerAction struct{}

// NewBannerAction returns a ready-to-use BannerAction.
func NewBannerAction() *BannerAction { return &BannerAction{} }

// Name implements Action.
func (a *BannerAction) Name() string { return "banner" }

// WantsRead implements Action.
func (a *BannerAction) WantsRead() bool { return true }

// OnConnected implements Action. BannerAction always wants a read, so
// this is never called by the engine; it is a no-op for safety.
func (a *BannerAction) OnConnected(ActionContext, ResultMap) {}

// OnConnectedWithRead implements Action.
func (a *BannerAction) OnConnectedWithRead(_ ActionContext, raw []byte, results ResultMap) {
	results["banner"] = strings.ToValidUTF8(string(raw), "�")
}
