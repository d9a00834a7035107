package models

import "inspection-hub/go-backend/pkg/pb"

func DetectionFromPB(d *pb.Detection) Detection {
	box := d.GetBbox()
	return Detection{
		ClassName:  d.GetClassName(),
		Confidence: float64(d.GetConfidence()),
		BBox: BoundingBox{
			X1: float64(box.GetX1()),
			Y1: float64(box.GetY1()),
			X2: float64(box.GetX2()),
			Y2: float64(box.GetY2()),
		},
	}.Normalize()
}

func DetectionsFromPB(in []*pb.Detection) []Detection {
	out := make([]Detection, 0, len(in))
	for _, d := range in {
		if d == nil {
			continue
		}
		out = append(out, DetectionFromPB(d))
	}
	return out
}

func DetectionsToPB(in []Detection) []*pb.Detection {
	out := make([]*pb.Detection, 0, len(in))
	for _, d := range in {
		out = append(out, &pb.Detection{
			ClassName:  d.ClassName,
			Confidence: float32(d.Confidence),
			Bbox: &pb.BoundingBox{
				X1: float32(d.BBox.X1),
				Y1: float32(d.BBox.Y1),
				X2: float32(d.BBox.X2),
				Y2: float32(d.BBox.Y2),
			},
		})
	}
	return out
}
