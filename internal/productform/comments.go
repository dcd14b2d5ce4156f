package productform

import "github.com/google/uuid"

// Comment sub-editor: operations on the comment sequence nested inside a
// comment-group line. All no-op silently when the line index is out of
// range or the line is not a comment group.

// AddComment appends an empty comment with a fresh identity to the
// comment-group line at lineIndex.
func (f *Form) AddComment(lineIndex int) {
	f.updateLive(lineIndex, func(line *PriceLine) {
		if line.Comments == nil {
			return
		}
		comment := Comment{
			ID:          uuid.NewString(),
			PriceLineID: line.ID,
			BranchID:    f.product.BranchID,
			CompanyID:   f.product.CompanyID,
			Active:      true,
		}
		line.Comments.Comments = append(line.Comments.Comments, comment)
	})
}

// RemoveComment filters out the comment at commentIndex.
func (f *Form) RemoveComment(lineIndex, commentIndex int) {
	f.updateLive(lineIndex, func(line *PriceLine) {
		if line.Comments == nil {
			return
		}
		comments := line.Comments.Comments
		if commentIndex < 0 || commentIndex >= len(comments) {
			return
		}
		next := make([]Comment, 0, len(comments)-1)
		next = append(next, comments[:commentIndex]...)
		next = append(next, comments[commentIndex+1:]...)
		line.Comments.Comments = next
	})
}

// SetCommentName replaces the name of one comment.
func (f *Form) SetCommentName(lineIndex, commentIndex int, name string) {
	f.updateComment(lineIndex, commentIndex, func(comment *Comment) {
		comment.Name = name
	})
}

// SetCommentDescription replaces the description of one comment.
func (f *Form) SetCommentDescription(lineIndex, commentIndex int, description string) {
	f.updateComment(lineIndex, commentIndex, func(comment *Comment) {
		comment.Description = description
	})
}

// updateComment rewrites one comment through a fresh comments array so the
// containing line observes the change.
func (f *Form) updateComment(lineIndex, commentIndex int, mutate func(*Comment)) {
	f.updateLive(lineIndex, func(line *PriceLine) {
		if line.Comments == nil {
			return
		}
		comments := line.Comments.Comments
		if commentIndex < 0 || commentIndex >= len(comments) {
			return
		}
		next := append([]Comment(nil), comments...)
		mutate(&next[commentIndex])
		line.Comments.Comments = next
	})
}
