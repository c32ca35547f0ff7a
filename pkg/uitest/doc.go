// Package uitest provides helpers for testing Bubble Tea components.
//
// [NewTestModel] runs any model whose Update returns its own concrete type
// under teatest:
//
//	tm := uitest.NewTestModel(t, slider.New("Width", "px", 0, 100), uitest.Compact)
//	tm.Send(tea.KeyMsg{Type: tea.KeyRight})
//	out := uitest.WaitForCapture(t, tm.Output(), func(b []byte) bool {
//		return bytes.Contains(b, []byte("1 px"))
//	})
//
// [Styled] splits rendered output into runs of text sharing one SGR style,
// so tests can check colors without comparing raw escape sequences:
//
//	uitest.SetupColorProfile()
//	seg, ok := uitest.Styled(view).Find("50 px")
//	require.True(t, ok)
//	assert.Equal(t, "EE6FF8", seg.Foreground)
package uitest
